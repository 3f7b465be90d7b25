package database

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/labdex/labdex/pkg/config"
	"github.com/labdex/labdex/pkg/database"
	"github.com/labdex/labdex/pkg/jobs"
	"github.com/labdex/labdex/pkg/llm"
	"github.com/labdex/labdex/pkg/mapping"
	"github.com/labdex/labdex/pkg/report"
	"github.com/labdex/labdex/pkg/units"
)

func TestUserScopeIsolation(t *testing.T) {
	client := Setup(t)
	ctx := context.Background()

	u1 := CreateUser(t, client, "user-1")
	u2 := CreateUser(t, client, "user-2")
	CreatePatient(t, client, u1, "patient-1", "Anna Smith")

	// The owner sees their patient.
	err := client.WithUserTx(ctx, u1, func(tx *stdsql.Tx) error {
		var n int
		if err := tx.QueryRowContext(ctx, `SELECT count(*) FROM patients`).Scan(&n); err != nil {
			return err
		}
		assert.Equal(t, 1, n)
		return nil
	})
	require.NoError(t, err)

	// Another user sees nothing.
	err = client.WithUserTx(ctx, u2, func(tx *stdsql.Tx) error {
		var n int
		if err := tx.QueryRowContext(ctx, `SELECT count(*) FROM patients`).Scan(&n); err != nil {
			return err
		}
		assert.Equal(t, 0, n)
		return nil
	})
	require.NoError(t, err)

	// Writing a row for someone else is rejected outright.
	err = client.WithUserTx(ctx, u2, func(tx *stdsql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO patients (id, user_id, display_name, name_normalized)
			VALUES ('patient-x', $1, 'Stolen', 'stolen')`, u1)
		return err
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "row-level security")

	// The bare app pool has no user bound and sees zero tenant rows.
	var n int
	require.NoError(t, client.DB().QueryRowContext(ctx,
		`SELECT count(*) FROM patients`).Scan(&n))
	assert.Equal(t, 0, n)
}

func TestAuditLogAppendOnly(t *testing.T) {
	client := Setup(t)
	ctx := context.Background()

	u1 := CreateUser(t, client, "user-1")

	err := client.WithUserTx(ctx, u1, func(tx *stdsql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO audit_logs (user_id, action) VALUES ($1, 'report_uploaded')`, u1); err != nil {
			return err
		}
		// Reading back is denied by policy: zero visible rows.
		var n int
		if err := tx.QueryRowContext(ctx, `SELECT count(*) FROM audit_logs`).Scan(&n); err != nil {
			return err
		}
		assert.Equal(t, 0, n)
		return nil
	})
	require.NoError(t, err)

	var n int
	require.NoError(t, client.AdminDB().QueryRowContext(ctx,
		`SELECT count(*) FROM audit_logs`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestUserDeletionBlocked(t *testing.T) {
	client := Setup(t)
	ctx := context.Background()

	CreateUser(t, client, "user-1")
	_, err := client.AdminDB().ExecContext(ctx, `DELETE FROM users WHERE id = 'user-1'`)
	require.Error(t, err)
	assert.ErrorContains(t, err, "cannot be deleted")
}

// fakeVision answers every structured call with a fixed extraction. The
// processor only reaches the model for extraction here: both test rows
// resolve on the exact tiers against seeded aliases.
type fakeVision struct {
	extraction json.RawMessage
}

func (f *fakeVision) Complete(context.Context, llm.CompleteRequest) (*llm.Completion, error) {
	return nil, errors.New("unexpected chat call")
}

func (f *fakeVision) GenerateStructured(context.Context, llm.StructuredRequest) (json.RawMessage, error) {
	return f.extraction, nil
}

func fixedExtraction(t *testing.T) json.RawMessage {
	t.Helper()
	hgb := 13.5
	wbc := 6.2
	raw := report.RawExtraction{
		PatientName: "Anna Smith",
		TestDate:    "2026-08-01",
		Parameters: []report.RawParameter{
			{
				ParameterName: "Hemoglobin",
				Result:        "13.5",
				Unit:          "g/dL",
				NumericResult: &hgb,
				ReferenceInterval: report.RawReference{
					Lower: ptr(12.0), Upper: ptr(16.0), Text: "12-16",
				},
			},
			{
				ParameterName: "WBC",
				Result:        "6.2",
				Unit:          "10^9/L",
				NumericResult: &wbc,
			},
		},
	}
	out, err := json.Marshal(raw)
	require.NoError(t, err)
	return out
}

func ptr(v float64) *float64 { return &v }

func newProcessor(t *testing.T, client *database.Client) *report.Processor {
	t.Helper()
	fake := &fakeVision{extraction: fixedExtraction(t)}

	unitsCfg := config.UnitsConfig{
		MaxConcurrency:       2,
		AutoLearnConfidence:  "high",
		UCUMValidationEnable: true,
	}
	mappingCfg := config.MappingConfig{
		FuzzyThreshold: 0.70,
		AutoAccept:     0.80,
		QueueLower:     0.60,
		AmbiguityDelta: 0.05,
	}

	normalizer := units.NewNormalizer(units.NewPGStore(client), fake, unitsCfg, "test-model")
	mapper := mapping.NewMapper(mapping.NewPGStore(client), fake, mappingCfg, "test-model")
	files := report.NewFileStore(t.TempDir())
	return report.NewProcessor(client, fake, "test-vision", units.NewBatcher(normalizer), mapper, files)
}

func TestProcessorReingestIdempotent(t *testing.T) {
	client := Setup(t)
	ctx := context.Background()

	u1 := CreateUser(t, client, "user-1")
	p1 := CreatePatient(t, client, u1, "patient-1", "Anna Smith")
	proc := newProcessor(t, client)

	payload := []byte("not really a png, but the fake model never looks")

	out1, err := proc.Process(ctx, u1, p1, "cbc.png", "image/png", payload)
	require.NoError(t, err)
	assert.True(t, out1.Created)
	assert.Equal(t, 2, out1.Rows)
	assert.Equal(t, 2, out1.Mapped)
	assert.Equal(t, 0, out1.Queued)

	out2, err := proc.Process(ctx, u1, p1, "cbc-again.png", "image/png", payload)
	require.NoError(t, err)
	assert.False(t, out2.Created)
	assert.Equal(t, out1.ReportID, out2.ReportID)

	// Results were replaced, not accumulated.
	var n int
	require.NoError(t, client.AdminDB().QueryRowContext(ctx,
		`SELECT count(*) FROM lab_results WHERE report_id = $1`, out1.ReportID).Scan(&n))
	assert.Equal(t, 2, n)

	// Seeded aliases resolved both units and both analytes on the exact tier.
	rows, err := client.AdminDB().QueryContext(ctx, `
		SELECT lr.parameter_name, lr.unit_canonical, a.code, lr.mapping_source
		FROM lab_results lr
		JOIN analytes a ON a.id = lr.analyte_id
		WHERE lr.report_id = $1
		ORDER BY lr.position`, out1.ReportID)
	require.NoError(t, err)
	defer rows.Close()

	type mapped struct{ name, unit, code, source string }
	var got []mapped
	for rows.Next() {
		var m mapped
		require.NoError(t, rows.Scan(&m.name, &m.unit, &m.code, &m.source))
		got = append(got, m)
	}
	require.NoError(t, rows.Err())
	require.Len(t, got, 2)
	assert.Equal(t, mapped{"Hemoglobin", "g/dL", "HGB", "auto_exact"}, got[0])
	assert.Equal(t, mapped{"WBC", "10*9/L", "WBC", "auto_exact"}, got[1])

	var status string
	var lastReport stdsql.NullTime
	require.NoError(t, client.AdminDB().QueryRowContext(ctx,
		`SELECT status FROM patient_reports WHERE id = $1`, out1.ReportID).Scan(&status))
	assert.Equal(t, "processed", status)
	require.NoError(t, client.AdminDB().QueryRowContext(ctx,
		`SELECT last_report_at FROM patients WHERE id = $1`, p1).Scan(&lastReport))
	assert.True(t, lastReport.Valid)
}

func TestTrigramSearch(t *testing.T) {
	client := Setup(t)
	ctx := context.Background()

	// Shared catalog: misspelled alias still finds the analyte.
	aliases, err := database.SimilarAnalyteAliases(ctx, client.AdminDB(), "hemoglobn", 0.3, 5)
	require.NoError(t, err)
	require.NotEmpty(t, aliases)
	assert.Equal(t, "HGB", aliases[0].Code)

	analytes, err := database.SearchAnalyteNames(ctx, client.AdminDB(), "hemoglobin", 0.3, 5)
	require.NoError(t, err)
	require.NotEmpty(t, analytes)
	assert.Equal(t, "HGB", analytes[0].Code)

	// Approved analytes can land without a category; the search must still
	// return them instead of choking on the NULL.
	_, err = client.AdminDB().ExecContext(ctx, `
		INSERT INTO analytes (id, code, name, canonical_unit, category)
		VALUES ('a-xan', 'XAN', 'Xanthine', 'mg/dL', NULL)`)
	require.NoError(t, err)

	analytes, err = database.SearchAnalyteNames(ctx, client.AdminDB(), "xanthine", 0.3, 5)
	require.NoError(t, err)
	require.NotEmpty(t, analytes)
	assert.Equal(t, "XAN", analytes[0].Code)
	assert.Equal(t, "", analytes[0].Category)

	// Parameter search runs inside the caller's scope only.
	u1 := CreateUser(t, client, "user-1")
	u2 := CreateUser(t, client, "user-2")
	p1 := CreatePatient(t, client, u1, "patient-1", "Anna Smith")

	err = client.WithUserTx(ctx, u1, func(tx *stdsql.Tx) error {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO patient_reports
				(id, patient_id, user_id, source_filename, mime_type, checksum, parser_version)
			VALUES ('report-1', $1, $2, 'cbc.pdf', 'application/pdf', 'sum', 'v2')`, p1, u1); err != nil {
			return err
		}
		for i, name := range []string{"Hemoglobin", "Hemoglobin (HGB)"} {
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO lab_results
					(id, report_id, user_id, position, parameter_name, result_text, unit_raw)
				VALUES ($1, 'report-1', $2, $3, $4, '1', 'g/dL')`,
				fmt.Sprintf("result-%d", i), u1, i, name); err != nil {
				return err
			}
		}

		matches, err := database.SearchParameterNames(ctx, tx, "hemoglobin", 0.3, 10)
		if err != nil {
			return err
		}
		assert.Len(t, matches, 2)
		return nil
	})
	require.NoError(t, err)

	err = client.WithUserTx(ctx, u2, func(tx *stdsql.Tx) error {
		matches, err := database.SearchParameterNames(ctx, tx, "hemoglobin", 0.3, 10)
		if err != nil {
			return err
		}
		assert.Empty(t, matches)
		return nil
	})
	require.NoError(t, err)
}

func TestNormalizeUnitText(t *testing.T) {
	client := Setup(t)
	ctx := context.Background()
	store := units.NewPGStore(client)

	got, err := store.NormalizeText(ctx, "  G/dL ")
	require.NoError(t, err)
	assert.Equal(t, "g/dl", got)

	// NFKC folds full-width characters the vision model sometimes emits.
	got, err = store.NormalizeText(ctx, "ｇ／ｄＬ")
	require.NoError(t, err)
	assert.Equal(t, "g/dl", got)
}

func TestUnitAliasLearnSerialized(t *testing.T) {
	client := Setup(t)
	ctx := context.Background()
	store := units.NewPGStore(client)

	// Two workers learn the same alias concurrently. The advisory lock
	// serializes the check-then-insert, so exactly one insert happens and
	// the other worker bumps the counter.
	learn := func() error {
		return store.WithAliasLock(ctx, "ziu/ml", func(ctx context.Context) error {
			existing, found, err := store.LookupAlias(ctx, "ziu/ml")
			if err != nil {
				return err
			}
			if !found {
				return store.InsertAlias(ctx, "ziu/ml", "[IU]/mL", "llm")
			}
			if existing == "[IU]/mL" {
				return store.BumpAlias(ctx, "ziu/ml")
			}
			return errors.New("alias conflict")
		})
	}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = learn()
		}(i)
	}
	wg.Wait()
	require.NoError(t, errs[0])
	require.NoError(t, errs[1])

	var canonical string
	var count int
	require.NoError(t, client.AdminDB().QueryRowContext(ctx,
		`SELECT canonical, learn_count FROM unit_aliases WHERE alias = 'ziu/ml'`).
		Scan(&canonical, &count))
	assert.Equal(t, "[IU]/mL", canonical)
	assert.Equal(t, 2, count)
}

func TestSessionSweepRemovesExpired(t *testing.T) {
	client := Setup(t)
	ctx := context.Background()

	u1 := CreateUser(t, client, "user-1")
	_, err := client.AdminDB().ExecContext(ctx, `
		INSERT INTO sessions (id, user_id, expires_at) VALUES
			('expired', $1, now() - interval '1 hour'),
			('live',    $1, now() + interval '1 hour')`, u1)
	require.NoError(t, err)

	sweeper := jobs.NewSweeper(client.Client, time.Hour)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	// The sweeper runs once immediately on Start.
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		var n int
		require.NoError(t, client.AdminDB().QueryRowContext(ctx,
			`SELECT count(*) FROM sessions`).Scan(&n))
		if n == 1 {
			break
		}
		time.Sleep(20 * time.Millisecond)
	}

	var remaining string
	require.NoError(t, client.AdminDB().QueryRowContext(ctx,
		`SELECT id FROM sessions`).Scan(&remaining))
	assert.Equal(t, "live", remaining)
}
