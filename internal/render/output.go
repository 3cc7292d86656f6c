package render

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pwalczyk/jobtrack/internal/i18n"
	"github.com/pwalczyk/jobtrack/internal/model"
)

// OutputFormat represents different output formats
type OutputFormat string

const (
	FormatDefault OutputFormat = "default"
	FormatJSON    OutputFormat = "json"
	FormatQuiet   OutputFormat = "quiet"
)

// RenderConfig contains configuration for output rendering
type RenderConfig struct {
	Format   OutputFormat
	Color    bool
	Language string
}

// DefaultRenderConfig returns a default render configuration
func DefaultRenderConfig() *RenderConfig {
	return &RenderConfig{
		Format:   FormatDefault,
		Color:    true,
		Language: "en",
	}
}

// Styles contains lipgloss styles for different elements
type Styles struct {
	Title     lipgloss.Style
	Separator lipgloss.Style
	Meta      lipgloss.Style
	Tags      lipgloss.Style
	Pending   lipgloss.Style
	Sent      lipgloss.Style
	Rejected  lipgloss.Style
	Archived  lipgloss.Style
	Favorite  lipgloss.Style
}

func initStyles(color bool) *Styles {
	styles := &Styles{}

	if color {
		styles.Title = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#A6E3A1"))
		styles.Separator = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
		styles.Meta = lipgloss.NewStyle().Faint(true)
		styles.Tags = lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("#CBA6F7"))
		styles.Pending = lipgloss.NewStyle().Foreground(lipgloss.Color("#89B4FA"))
		styles.Sent = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1"))
		styles.Rejected = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8"))
		styles.Archived = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAB387"))
		styles.Favorite = lipgloss.NewStyle().Foreground(lipgloss.Color("#F9E2AF"))
	} else {
		styles.Title = lipgloss.NewStyle().Bold(true)
		styles.Separator = lipgloss.NewStyle()
		styles.Meta = lipgloss.NewStyle()
		styles.Tags = lipgloss.NewStyle()
		styles.Pending = lipgloss.NewStyle()
		styles.Sent = lipgloss.NewStyle()
		styles.Rejected = lipgloss.NewStyle()
		styles.Archived = lipgloss.NewStyle()
		styles.Favorite = lipgloss.NewStyle()
	}

	return styles
}

// Renderer handles output formatting
type Renderer struct {
	config *RenderConfig
	styles *Styles
}

// NewRenderer creates a new renderer with the given config
func NewRenderer(config *RenderConfig) *Renderer {
	if config == nil {
		config = DefaultRenderConfig()
	}
	return &Renderer{config: config, styles: initStyles(config.Color)}
}

// RenderApplications renders the filtered application list.
func (r *Renderer) RenderApplications(apps []model.JobApplication, archived bool) (string, error) {
	switch r.config.Format {
	case FormatJSON:
		data, err := json.MarshalIndent(apps, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return string(data) + "\n", nil
	case FormatQuiet:
		var b strings.Builder
		for _, app := range apps {
			b.WriteString(app.Title)
			b.WriteString("\n")
		}
		return b.String(), nil
	default:
		return r.renderDefault(apps, archived), nil
	}
}

func (r *Renderer) renderDefault(apps []model.JobApplication, archived bool) string {
	tr := i18n.Translator(r.config.Language)

	var b strings.Builder
	header := tr("applications.title")
	if archived {
		header = tr("applications.archived")
	}
	b.WriteString(r.styles.Title.Render(header))
	b.WriteString("\n")
	b.WriteString(r.styles.Separator.Render(strings.Repeat("─", 72)))
	b.WriteString("\n")

	for _, app := range apps {
		b.WriteString(r.renderSingle(app, tr))
		b.WriteString(r.styles.Separator.Render(strings.Repeat("─", 72)))
		b.WriteString("\n")
	}

	b.WriteString(r.styles.Meta.Render(fmt.Sprintf("%d applications", len(apps))))
	b.WriteString("\n")
	return b.String()
}

func (r *Renderer) renderSingle(app model.JobApplication, tr func(string) string) string {
	statusStyle := r.styles.Pending
	switch app.Status() {
	case model.StatusSent:
		statusStyle = r.styles.Sent
	case model.StatusRejected:
		statusStyle = r.styles.Rejected
	}

	var b strings.Builder

	title := statusStyle.Render("● ") + r.styles.Title.Render(app.Title)
	if app.Favorite() {
		title += " " + r.styles.Favorite.Render("★")
	}
	b.WriteString(title)
	b.WriteString("\n")

	if app.Location != "" {
		b.WriteString(r.styles.Meta.Render("  " + app.Location))
		b.WriteString("\n")
	}
	if len(app.Tags) > 0 {
		b.WriteString(r.styles.Tags.Render("  #" + strings.Join(app.SortedTags(), " #")))
		b.WriteString("\n")
	}

	b.WriteString(r.styles.Meta.Render(
		fmt.Sprintf("  %s: %s", tr("applications.created"), app.CreatedAt.Local().Format(model.DisplayDateTime)),
	))
	b.WriteString("\n")
	if app.AppliedAt != nil {
		b.WriteString(r.styles.Sent.Render(
			fmt.Sprintf("  %s: %s", tr("applications.applied"), app.AppliedAt.Local().Format(model.DisplayDateTime)),
		))
		b.WriteString("\n")
	}
	if app.RejectedAt != nil {
		line := fmt.Sprintf("  %s: %s", tr("applications.rejected"), app.RejectedAt.Local().Format(model.DisplayDateTime))
		if app.RejectedReason != nil {
			line += " - " + *app.RejectedReason
		}
		b.WriteString(r.styles.Rejected.Render(line))
		b.WriteString("\n")
	}
	if app.ArchivedAt != nil {
		b.WriteString(r.styles.Archived.Render(
			"  " + app.ArchivedAt.Local().Format(model.DisplayDateTime),
		))
		b.WriteString("\n")
	}
	if app.URL != "" {
		b.WriteString(r.styles.Meta.Render("  " + app.URL))
		b.WriteString("\n")
	}
	if app.URL2 != nil && *app.URL2 != "" {
		b.WriteString(r.styles.Meta.Render("  " + *app.URL2))
		b.WriteString("\n")
	}

	return b.String()
}
