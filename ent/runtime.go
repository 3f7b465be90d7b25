// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/labdex/labdex/ent/analyte"
	"github.com/labdex/labdex/ent/analytealias"
	"github.com/labdex/labdex/ent/chatsession"
	"github.com/labdex/labdex/ent/gmailprovenance"
	"github.com/labdex/labdex/ent/identity"
	"github.com/labdex/labdex/ent/labresult"
	"github.com/labdex/labdex/ent/matchreview"
	"github.com/labdex/labdex/ent/patient"
	"github.com/labdex/labdex/ent/patientreport"
	"github.com/labdex/labdex/ent/pendinganalyte"
	"github.com/labdex/labdex/ent/schema"
	"github.com/labdex/labdex/ent/session"
	"github.com/labdex/labdex/ent/sqlgenerationlog"
	"github.com/labdex/labdex/ent/unitalias"
	"github.com/labdex/labdex/ent/unitreview"
	"github.com/labdex/labdex/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	analyteFields := schema.Analyte{}.Fields()
	_ = analyteFields
	// analyteDescCreatedAt is the schema descriptor for created_at field.
	analyteDescCreatedAt := analyteFields[5].Descriptor()
	// analyte.DefaultCreatedAt holds the default value on creation for the created_at field.
	analyte.DefaultCreatedAt = analyteDescCreatedAt.Default.(func() time.Time)
	analytealiasFields := schema.AnalyteAlias{}.Fields()
	_ = analytealiasFields
	// analytealiasDescLanguage is the schema descriptor for language field.
	analytealiasDescLanguage := analytealiasFields[4].Descriptor()
	// analytealias.DefaultLanguage holds the default value on creation for the language field.
	analytealias.DefaultLanguage = analytealiasDescLanguage.Default.(string)
	// analytealiasDescConfidence is the schema descriptor for confidence field.
	analytealiasDescConfidence := analytealiasFields[5].Descriptor()
	// analytealias.DefaultConfidence holds the default value on creation for the confidence field.
	analytealias.DefaultConfidence = analytealiasDescConfidence.Default.(float64)
	// analytealiasDescCreatedAt is the schema descriptor for created_at field.
	analytealiasDescCreatedAt := analytealiasFields[7].Descriptor()
	// analytealias.DefaultCreatedAt holds the default value on creation for the created_at field.
	analytealias.DefaultCreatedAt = analytealiasDescCreatedAt.Default.(func() time.Time)
	chatsessionFields := schema.ChatSession{}.Fields()
	_ = chatsessionFields
	// chatsessionDescTurnCount is the schema descriptor for turn_count field.
	chatsessionDescTurnCount := chatsessionFields[3].Descriptor()
	// chatsession.DefaultTurnCount holds the default value on creation for the turn_count field.
	chatsession.DefaultTurnCount = chatsessionDescTurnCount.Default.(int)
	// chatsessionDescCreatedAt is the schema descriptor for created_at field.
	chatsessionDescCreatedAt := chatsessionFields[5].Descriptor()
	// chatsession.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatsession.DefaultCreatedAt = chatsessionDescCreatedAt.Default.(func() time.Time)
	// chatsessionDescUpdatedAt is the schema descriptor for updated_at field.
	chatsessionDescUpdatedAt := chatsessionFields[6].Descriptor()
	// chatsession.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	chatsession.DefaultUpdatedAt = chatsessionDescUpdatedAt.Default.(func() time.Time)
	// chatsession.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	chatsession.UpdateDefaultUpdatedAt = chatsessionDescUpdatedAt.UpdateDefault.(func() time.Time)
	gmailprovenanceFields := schema.GmailProvenance{}.Fields()
	_ = gmailprovenanceFields
	// gmailprovenanceDescCreatedAt is the schema descriptor for created_at field.
	gmailprovenanceDescCreatedAt := gmailprovenanceFields[10].Descriptor()
	// gmailprovenance.DefaultCreatedAt holds the default value on creation for the created_at field.
	gmailprovenance.DefaultCreatedAt = gmailprovenanceDescCreatedAt.Default.(func() time.Time)
	identityFields := schema.Identity{}.Fields()
	_ = identityFields
	// identityDescCreatedAt is the schema descriptor for created_at field.
	identityDescCreatedAt := identityFields[4].Descriptor()
	// identity.DefaultCreatedAt holds the default value on creation for the created_at field.
	identity.DefaultCreatedAt = identityDescCreatedAt.Default.(func() time.Time)
	labresultFields := schema.LabResult{}.Fields()
	_ = labresultFields
	// labresultDescOutOfRange is the schema descriptor for out_of_range field.
	labresultDescOutOfRange := labresultFields[15].Descriptor()
	// labresult.DefaultOutOfRange holds the default value on creation for the out_of_range field.
	labresult.DefaultOutOfRange = labresultDescOutOfRange.Default.(bool)
	// labresultDescCreatedAt is the schema descriptor for created_at field.
	labresultDescCreatedAt := labresultFields[21].Descriptor()
	// labresult.DefaultCreatedAt holds the default value on creation for the created_at field.
	labresult.DefaultCreatedAt = labresultDescCreatedAt.Default.(func() time.Time)
	matchreviewFields := schema.MatchReview{}.Fields()
	_ = matchreviewFields
	// matchreviewDescSource is the schema descriptor for source field.
	matchreviewDescSource := matchreviewFields[3].Descriptor()
	// matchreview.DefaultSource holds the default value on creation for the source field.
	matchreview.DefaultSource = matchreviewDescSource.Default.(string)
	// matchreviewDescCreatedAt is the schema descriptor for created_at field.
	matchreviewDescCreatedAt := matchreviewFields[8].Descriptor()
	// matchreview.DefaultCreatedAt holds the default value on creation for the created_at field.
	matchreview.DefaultCreatedAt = matchreviewDescCreatedAt.Default.(func() time.Time)
	patientFields := schema.Patient{}.Fields()
	_ = patientFields
	// patientDescCreatedAt is the schema descriptor for created_at field.
	patientDescCreatedAt := patientFields[7].Descriptor()
	// patient.DefaultCreatedAt holds the default value on creation for the created_at field.
	patient.DefaultCreatedAt = patientDescCreatedAt.Default.(func() time.Time)
	// patientDescUpdatedAt is the schema descriptor for updated_at field.
	patientDescUpdatedAt := patientFields[8].Descriptor()
	// patient.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patient.DefaultUpdatedAt = patientDescUpdatedAt.Default.(func() time.Time)
	// patient.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patient.UpdateDefaultUpdatedAt = patientDescUpdatedAt.UpdateDefault.(func() time.Time)
	patientreportFields := schema.PatientReport{}.Fields()
	_ = patientreportFields
	// patientreportDescCreatedAt is the schema descriptor for created_at field.
	patientreportDescCreatedAt := patientreportFields[17].Descriptor()
	// patientreport.DefaultCreatedAt holds the default value on creation for the created_at field.
	patientreport.DefaultCreatedAt = patientreportDescCreatedAt.Default.(func() time.Time)
	// patientreportDescUpdatedAt is the schema descriptor for updated_at field.
	patientreportDescUpdatedAt := patientreportFields[18].Descriptor()
	// patientreport.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	patientreport.DefaultUpdatedAt = patientreportDescUpdatedAt.Default.(func() time.Time)
	// patientreport.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	patientreport.UpdateDefaultUpdatedAt = patientreportDescUpdatedAt.UpdateDefault.(func() time.Time)
	pendinganalyteFields := schema.PendingAnalyte{}.Fields()
	_ = pendinganalyteFields
	// pendinganalyteDescCreatedAt is the schema descriptor for created_at field.
	pendinganalyteDescCreatedAt := pendinganalyteFields[9].Descriptor()
	// pendinganalyte.DefaultCreatedAt holds the default value on creation for the created_at field.
	pendinganalyte.DefaultCreatedAt = pendinganalyteDescCreatedAt.Default.(func() time.Time)
	// pendinganalyteDescUpdatedAt is the schema descriptor for updated_at field.
	pendinganalyteDescUpdatedAt := pendinganalyteFields[10].Descriptor()
	// pendinganalyte.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	pendinganalyte.DefaultUpdatedAt = pendinganalyteDescUpdatedAt.Default.(func() time.Time)
	// pendinganalyte.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	pendinganalyte.UpdateDefaultUpdatedAt = pendinganalyteDescUpdatedAt.UpdateDefault.(func() time.Time)
	sqlgenerationlogFields := schema.SQLGenerationLog{}.Fields()
	_ = sqlgenerationlogFields
	// sqlgenerationlogDescIterations is the schema descriptor for iterations field.
	sqlgenerationlogDescIterations := sqlgenerationlogFields[6].Descriptor()
	// sqlgenerationlog.DefaultIterations holds the default value on creation for the iterations field.
	sqlgenerationlog.DefaultIterations = sqlgenerationlogDescIterations.Default.(int)
	// sqlgenerationlogDescDurationMs is the schema descriptor for duration_ms field.
	sqlgenerationlogDescDurationMs := sqlgenerationlogFields[7].Descriptor()
	// sqlgenerationlog.DefaultDurationMs holds the default value on creation for the duration_ms field.
	sqlgenerationlog.DefaultDurationMs = sqlgenerationlogDescDurationMs.Default.(int)
	// sqlgenerationlogDescCreatedAt is the schema descriptor for created_at field.
	sqlgenerationlogDescCreatedAt := sqlgenerationlogFields[10].Descriptor()
	// sqlgenerationlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	sqlgenerationlog.DefaultCreatedAt = sqlgenerationlogDescCreatedAt.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescCreatedAt is the schema descriptor for created_at field.
	sessionDescCreatedAt := sessionFields[4].Descriptor()
	// session.DefaultCreatedAt holds the default value on creation for the created_at field.
	session.DefaultCreatedAt = sessionDescCreatedAt.Default.(func() time.Time)
	unitaliasFields := schema.UnitAlias{}.Fields()
	_ = unitaliasFields
	// unitaliasDescSource is the schema descriptor for source field.
	unitaliasDescSource := unitaliasFields[2].Descriptor()
	// unitalias.DefaultSource holds the default value on creation for the source field.
	unitalias.DefaultSource = unitaliasDescSource.Default.(string)
	// unitaliasDescLearnCount is the schema descriptor for learn_count field.
	unitaliasDescLearnCount := unitaliasFields[3].Descriptor()
	// unitalias.DefaultLearnCount holds the default value on creation for the learn_count field.
	unitalias.DefaultLearnCount = unitaliasDescLearnCount.Default.(int)
	// unitaliasDescLastUsedAt is the schema descriptor for last_used_at field.
	unitaliasDescLastUsedAt := unitaliasFields[4].Descriptor()
	// unitalias.DefaultLastUsedAt holds the default value on creation for the last_used_at field.
	unitalias.DefaultLastUsedAt = unitaliasDescLastUsedAt.Default.(func() time.Time)
	// unitaliasDescCreatedAt is the schema descriptor for created_at field.
	unitaliasDescCreatedAt := unitaliasFields[5].Descriptor()
	// unitalias.DefaultCreatedAt holds the default value on creation for the created_at field.
	unitalias.DefaultCreatedAt = unitaliasDescCreatedAt.Default.(func() time.Time)
	unitreviewFields := schema.UnitReview{}.Fields()
	_ = unitreviewFields
	// unitreviewDescCreatedAt is the schema descriptor for created_at field.
	unitreviewDescCreatedAt := unitreviewFields[9].Descriptor()
	// unitreview.DefaultCreatedAt holds the default value on creation for the created_at field.
	unitreview.DefaultCreatedAt = unitreviewDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[3].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[4].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
