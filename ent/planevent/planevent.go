// Code generated by ent, DO NOT EDIT.

package planevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the planevent type in the database.
	Label = "plan_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldMode holds the string denoting the mode field in the database.
	FieldMode = "mode"
	// FieldAge holds the string denoting the age field in the database.
	FieldAge = "age"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldLearningGoal holds the string denoting the learning_goal field in the database.
	FieldLearningGoal = "learning_goal"
	// FieldTiming holds the string denoting the timing field in the database.
	FieldTiming = "timing"
	// FieldModules holds the string denoting the modules field in the database.
	FieldModules = "modules"
	// FieldInterests holds the string denoting the interests field in the database.
	FieldInterests = "interests"
	// FieldDifferentiation holds the string denoting the differentiation field in the database.
	FieldDifferentiation = "differentiation"
	// FieldVisualLanguage holds the string denoting the visual_language field in the database.
	FieldVisualLanguage = "visual_language"
	// FieldHTML holds the string denoting the html field in the database.
	FieldHTML = "html"
	// FieldPromptCount holds the string denoting the prompt_count field in the database.
	FieldPromptCount = "prompt_count"
	// FieldSuccess holds the string denoting the success field in the database.
	FieldSuccess = "success"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// Table holds the table name of the planevent in the database.
	Table = "plan_events"
)

// Columns holds all SQL columns for planevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldMode,
	FieldAge,
	FieldSubject,
	FieldTopic,
	FieldLearningGoal,
	FieldTiming,
	FieldModules,
	FieldInterests,
	FieldDifferentiation,
	FieldVisualLanguage,
	FieldHTML,
	FieldPromptCount,
	FieldSuccess,
	FieldErrorMessage,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultMode holds the default value on creation for the "mode" field.
	DefaultMode string
	// DefaultAge holds the default value on creation for the "age" field.
	DefaultAge string
	// DefaultSubject holds the default value on creation for the "subject" field.
	DefaultSubject string
	// DefaultTopic holds the default value on creation for the "topic" field.
	DefaultTopic string
	// DefaultLearningGoal holds the default value on creation for the "learning_goal" field.
	DefaultLearningGoal string
	// DefaultTiming holds the default value on creation for the "timing" field.
	DefaultTiming string
	// DefaultInterests holds the default value on creation for the "interests" field.
	DefaultInterests string
	// DefaultDifferentiation holds the default value on creation for the "differentiation" field.
	DefaultDifferentiation bool
	// DefaultVisualLanguage holds the default value on creation for the "visual_language" field.
	DefaultVisualLanguage string
	// DefaultHTML holds the default value on creation for the "html" field.
	DefaultHTML string
	// DefaultPromptCount holds the default value on creation for the "prompt_count" field.
	DefaultPromptCount int
	// DefaultSuccess holds the default value on creation for the "success" field.
	DefaultSuccess bool
	// DefaultErrorMessage holds the default value on creation for the "error_message" field.
	DefaultErrorMessage string
)

// OrderOption defines the ordering options for the PlanEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByMode orders the results by the mode field.
func ByMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMode, opts...).ToFunc()
}

// ByAge orders the results by the age field.
func ByAge(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAge, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByLearningGoal orders the results by the learning_goal field.
func ByLearningGoal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearningGoal, opts...).ToFunc()
}

// ByTiming orders the results by the timing field.
func ByTiming(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTiming, opts...).ToFunc()
}

// ByInterests orders the results by the interests field.
func ByInterests(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInterests, opts...).ToFunc()
}

// ByDifferentiation orders the results by the differentiation field.
func ByDifferentiation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifferentiation, opts...).ToFunc()
}

// ByVisualLanguage orders the results by the visual_language field.
func ByVisualLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVisualLanguage, opts...).ToFunc()
}

// ByHTML orders the results by the html field.
func ByHTML(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHTML, opts...).ToFunc()
}

// ByPromptCount orders the results by the prompt_count field.
func ByPromptCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPromptCount, opts...).ToFunc()
}

// BySuccess orders the results by the success field.
func BySuccess(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSuccess, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}
