// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Analyte is the predicate function for analyte builders.
type Analyte func(*sql.Selector)

// AnalyteAlias is the predicate function for analytealias builders.
type AnalyteAlias func(*sql.Selector)

// ChatSession is the predicate function for chatsession builders.
type ChatSession func(*sql.Selector)

// GmailProvenance is the predicate function for gmailprovenance builders.
type GmailProvenance func(*sql.Selector)

// Identity is the predicate function for identity builders.
type Identity func(*sql.Selector)

// LabResult is the predicate function for labresult builders.
type LabResult func(*sql.Selector)

// MatchReview is the predicate function for matchreview builders.
type MatchReview func(*sql.Selector)

// Patient is the predicate function for patient builders.
type Patient func(*sql.Selector)

// PatientReport is the predicate function for patientreport builders.
type PatientReport func(*sql.Selector)

// PendingAnalyte is the predicate function for pendinganalyte builders.
type PendingAnalyte func(*sql.Selector)

// SQLGenerationLog is the predicate function for sqlgenerationlog builders.
type SQLGenerationLog func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// UnitAlias is the predicate function for unitalias builders.
type UnitAlias func(*sql.Selector)

// UnitReview is the predicate function for unitreview builders.
type UnitReview func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
