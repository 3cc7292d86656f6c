// Package transfer serializes the full record set to and from the portable
// JSON export format.
package transfer

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/pwalczyk/jobtrack/internal/db"
	"github.com/pwalczyk/jobtrack/internal/dialog"
	"github.com/pwalczyk/jobtrack/internal/model"
)

// DefaultExportName is the conventional export filename.
const DefaultExportName = "job-applications.json"

// Result counts what an import did.
type Result struct {
	Imported int
	Skipped  int
}

// Export writes all records as a pretty-printed JSON array. Null-valued
// fields are stripped by the record's own JSON shape.
func Export(dbh *sql.DB, w io.Writer) error {
	apps, err := db.GetAllApplications(dbh)
	if err != nil {
		return err
	}
	if apps == nil {
		apps = []model.JobApplication{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(apps)
}

// ExportToFile exports into the named file, creating or truncating it.
func ExportToFile(dbh *sql.DB, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Export(dbh, f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Import parses a JSON array of records and inserts them one by one. A record
// whose creation timestamp already exists asks the user whether to overwrite;
// declining counts it as skipped. Malformed input fails before any write.
// A storage failure mid-stream stops the loop; records already written stay
// written and the counts so far are returned with the error.
func Import(dbh *sql.DB, r io.Reader, p dialog.Prompter) (Result, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Result{}, err
	}

	var apps []model.JobApplication
	if err := json.Unmarshal(data, &apps); err != nil {
		return Result{}, fmt.Errorf("import payload is not a JSON array of applications: %w", err)
	}

	var res Result
	for _, app := range apps {
		_, err := db.GetApplication(dbh, app.CreatedAt)
		switch err {
		case nil:
			ok, err := p.Confirm(fmt.Sprintf(
				"An application created at %s already exists. Replace it?",
				app.CreatedAt.Local().Format(model.DisplayDateTime),
			))
			if err != nil {
				return res, err
			}
			if !ok {
				res.Skipped++
				continue
			}
		case db.ErrNotFound:
			// insert below
		default:
			return res, err
		}

		if err := db.SaveApplication(dbh, app); err != nil {
			return res, err
		}
		res.Imported++
	}
	return res, nil
}
