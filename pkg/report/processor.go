package report

import (
	"context"
	"crypto/sha256"
	stdsql "database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labdex/labdex/pkg/database"
	"github.com/labdex/labdex/pkg/llm"
	"github.com/labdex/labdex/pkg/mapping"
	"github.com/labdex/labdex/pkg/units"
)

// Rejection reasons surfaced to callers before extraction starts.
var (
	ErrUnsupportedMIME = errors.New("unsupported payload type")
	ErrTooManyPages    = errors.New("document exceeds the page limit")
)

// Outcome summarizes one processed report.
type Outcome struct {
	ReportID string
	Created  bool // false when the same bytes were re-ingested
	Rows     int
	Mapped   int
	Queued   int
}

// Processor drives the extract, persist, normalize, map pipeline for one
// payload. Within a report the stages run strictly in order.
type Processor struct {
	db          *database.Client
	llm         llm.Client
	visionModel string
	units       *units.Batcher
	mapper      *mapping.Mapper
	files       *FileStore
}

// NewProcessor wires the pipeline.
func NewProcessor(db *database.Client, client llm.Client, visionModel string, batcher *units.Batcher, mapper *mapping.Mapper, files *FileStore) *Processor {
	return &Processor{
		db:          db,
		llm:         client,
		visionModel: visionModel,
		units:       batcher,
		mapper:      mapper,
		files:       files,
	}
}

// Process ingests one payload for a patient. Re-ingesting identical bytes
// updates the existing report in place and replaces its results. Mapping
// failures are non-fatal; the report is retained and reviews accumulate.
func (p *Processor) Process(ctx context.Context, userID, patientID, filename, mimeType string, payload []byte) (*Outcome, error) {
	if !AllowedMIMEs[mimeType] {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMIME, mimeType)
	}
	if mimeType == "application/pdf" {
		if pages := CountPDFPages(payload); pages > MaxPDFPages {
			return nil, fmt.Errorf("%w: %d pages, maximum is %d", ErrTooManyPages, pages, MaxPDFPages)
		}
	}

	sum := sha256.Sum256(payload)
	checksum := hex.EncodeToString(sum[:])

	raw, rawJSON, err := Extract(ctx, p.llm, p.visionModel, mimeType, payload)
	if err != nil {
		return nil, err
	}
	sanitized := Sanitize(raw)

	out := &Outcome{}
	var storedPath string
	var resultIDs []string

	err = p.db.WithUserTx(ctx, userID, func(tx *stdsql.Tx) error {
		reportID, created, err := upsertReport(ctx, tx, userID, patientID, filename, mimeType, checksum, rawJSON, sanitized)
		if err != nil {
			return err
		}
		out.ReportID = reportID
		out.Created = created

		path, err := p.files.Save(patientID, reportID, mimeType, payload)
		if err != nil {
			return err
		}
		storedPath = path

		resultIDs, err = replaceResults(ctx, tx, reportID, userID, sanitized.Rows)
		if err != nil {
			return err
		}
		out.Rows = len(resultIDs)

		_, err = tx.ExecContext(ctx, `
			UPDATE patients SET last_report_at = now(), updated_at = now()
			WHERE id = $1`, patientID)
		return err
	})
	if err != nil {
		// The transaction rolled back; drop the orphaned file.
		if storedPath != "" {
			if rmErr := p.files.Remove(storedPath); rmErr != nil {
				slog.Warn("Orphaned payload cleanup failed", "path", storedPath, "error", rmErr)
			}
		}
		return nil, fmt.Errorf("persist report: %w", err)
	}

	p.normalizeUnits(ctx, resultIDs, sanitized.Rows)
	p.mapAnalytes(ctx, out, resultIDs, sanitized.Rows)

	if _, err := p.db.AdminDB().ExecContext(ctx, `
		UPDATE patient_reports SET status = 'processed', processed_at = now(), updated_at = updated_at
		WHERE id = $1`, out.ReportID); err != nil {
		slog.Warn("Report status update failed", "report_id", out.ReportID, "error", err)
	}

	slog.Info("Report processed",
		"report_id", out.ReportID,
		"created", out.Created,
		"rows", out.Rows,
		"mapped", out.Mapped,
		"queued", out.Queued)
	return out, nil
}

// upsertReport creates or refreshes the report row keyed by
// (patient_id, checksum). created is detected by the created_at/updated_at
// equality that only a fresh insert exhibits.
func upsertReport(ctx context.Context, tx *stdsql.Tx, userID, patientID, filename, mimeType, checksum, rawJSON string, s *Sanitized) (string, bool, error) {
	missing, err := json.Marshal(s.MissingData)
	if err != nil {
		return "", false, fmt.Errorf("marshal missing data: %w", err)
	}

	var (
		reportID             string
		createdAt, updatedAt time.Time
	)
	err = tx.QueryRowContext(ctx, `
		INSERT INTO patient_reports
			(id, patient_id, user_id, source_filename, mime_type, checksum,
			 parser_version, status, recognized_at, test_date,
			 patient_name, patient_gender, patient_dob, patient_age,
			 raw_model_output, missing_data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'recognized', now(), $8,
			NULLIF($9, ''), NULLIF($10, ''), $11, $12, $13, $14::jsonb)
		ON CONFLICT (patient_id, checksum) DO UPDATE SET
			source_filename = EXCLUDED.source_filename,
			parser_version = EXCLUDED.parser_version,
			status = 'recognized',
			recognized_at = now(),
			test_date = EXCLUDED.test_date,
			raw_model_output = EXCLUDED.raw_model_output,
			missing_data = EXCLUDED.missing_data,
			updated_at = now()
		RETURNING id, created_at, updated_at`,
		uuid.NewString(), patientID, userID, filename, mimeType, checksum,
		ParserVersion, s.TestDate, s.PatientName, s.PatientGender,
		s.PatientDOB, s.PatientAge, rawJSON, missing).
		Scan(&reportID, &createdAt, &updatedAt)
	if err != nil {
		return "", false, fmt.Errorf("upsert report: %w", err)
	}
	return reportID, createdAt.Equal(updatedAt), nil
}

// replaceResults deletes the report's previous rows and inserts the new
// set, preserving document order through position.
func replaceResults(ctx context.Context, tx *stdsql.Tx, reportID, userID string, rows []Row) ([]string, error) {
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM lab_results WHERE report_id = $1`, reportID); err != nil {
		return nil, fmt.Errorf("clear previous results: %w", err)
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		id := uuid.NewString()
		_, err := tx.ExecContext(ctx, `
			INSERT INTO lab_results
				(id, report_id, user_id, position, parameter_name, result_text,
				 numeric_result, unit_raw, ref_lower, ref_lower_operator,
				 ref_upper, ref_upper_operator, ref_text, ref_full_text,
				 out_of_range, specimen_type)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, NULLIF($16, ''))`,
			id, reportID, userID, row.Position, row.ParameterName, row.ResultText,
			row.NumericResult, row.UnitRaw, row.RefLower, row.RefLowerOp,
			row.RefUpper, row.RefUpperOp, row.RefText, row.RefFullText,
			row.OutOfRange, row.SpecimenType)
		if err != nil {
			return nil, fmt.Errorf("insert result %d: %w", row.Position, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// normalizeUnits runs the unit pipeline over all rows with a unit and
// writes the canonical forms. Failures keep the raw unit.
func (p *Processor) normalizeUnits(ctx context.Context, resultIDs []string, rows []Row) {
	var items []units.BatchItem
	for i, row := range rows {
		if row.UnitRaw == "" {
			continue
		}
		id, err := uuid.Parse(resultIDs[i])
		if err != nil {
			continue
		}
		items = append(items, units.BatchItem{
			ResultID:      id,
			RawUnit:       row.UnitRaw,
			ParameterName: row.ParameterName,
		})
	}
	if len(items) == 0 {
		return
	}

	outcomes := p.units.NormalizeBatch(ctx, items)
	for id, outcome := range outcomes {
		if outcome.Tier == units.TierRaw {
			continue
		}
		if _, err := p.db.AdminDB().ExecContext(ctx, `
			UPDATE lab_results SET unit_canonical = $2 WHERE id = $1`,
			id.String(), outcome.Canonical); err != nil {
			slog.Warn("Canonical unit write failed", "result_id", id, "error", err)
		}
	}
}

// mapAnalytes runs the analyte mapper over the new rows. Failures leave
// rows unmapped with reviews queued.
func (p *Processor) mapAnalytes(ctx context.Context, out *Outcome, resultIDs []string, rows []Row) {
	inputs := make([]mapping.Input, 0, len(rows))
	for i, row := range rows {
		inputs = append(inputs, mapping.Input{
			ResultID:      resultIDs[i],
			ParameterName: row.ParameterName,
			Unit:          row.UnitRaw,
			ReferenceHint: row.RefText,
		})
	}
	if len(inputs) == 0 {
		return
	}

	res, err := p.mapper.WetRun(ctx, out.ReportID, inputs)
	if err != nil {
		slog.Warn("Analyte mapping failed, report retained",
			"report_id", out.ReportID, "error", err)
		return
	}
	out.Mapped = res.Written
	out.Queued = res.Queued
}
