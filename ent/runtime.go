// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/eduvision/ent/llmrequestevent"
	"github.com/abhisek/eduvision/ent/planevent"
	"github.com/abhisek/eduvision/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.DefaultProvider holds the default value on creation for the provider field.
	llmrequestevent.DefaultProvider = llmrequesteventDescProvider.Default.(string)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.DefaultModel holds the default value on creation for the model field.
	llmrequestevent.DefaultModel = llmrequesteventDescModel.Default.(string)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.DefaultPurpose holds the default value on creation for the purpose field.
	llmrequestevent.DefaultPurpose = llmrequesteventDescPurpose.Default.(string)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescSuccess is the schema descriptor for success field.
	llmrequesteventDescSuccess := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultSuccess holds the default value on creation for the success field.
	llmrequestevent.DefaultSuccess = llmrequesteventDescSuccess.Default.(bool)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	planeventMixin := schema.PlanEvent{}.Mixin()
	planeventMixinFields0 := planeventMixin[0].Fields()
	_ = planeventMixinFields0
	planeventFields := schema.PlanEvent{}.Fields()
	_ = planeventFields
	// planeventDescTimestamp is the schema descriptor for timestamp field.
	planeventDescTimestamp := planeventMixinFields0[1].Descriptor()
	// planevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	planevent.DefaultTimestamp = planeventDescTimestamp.Default.(func() time.Time)
	// planeventDescMode is the schema descriptor for mode field.
	planeventDescMode := planeventFields[0].Descriptor()
	// planevent.DefaultMode holds the default value on creation for the mode field.
	planevent.DefaultMode = planeventDescMode.Default.(string)
	// planeventDescAge is the schema descriptor for age field.
	planeventDescAge := planeventFields[1].Descriptor()
	// planevent.DefaultAge holds the default value on creation for the age field.
	planevent.DefaultAge = planeventDescAge.Default.(string)
	// planeventDescSubject is the schema descriptor for subject field.
	planeventDescSubject := planeventFields[2].Descriptor()
	// planevent.DefaultSubject holds the default value on creation for the subject field.
	planevent.DefaultSubject = planeventDescSubject.Default.(string)
	// planeventDescTopic is the schema descriptor for topic field.
	planeventDescTopic := planeventFields[3].Descriptor()
	// planevent.DefaultTopic holds the default value on creation for the topic field.
	planevent.DefaultTopic = planeventDescTopic.Default.(string)
	// planeventDescLearningGoal is the schema descriptor for learning_goal field.
	planeventDescLearningGoal := planeventFields[4].Descriptor()
	// planevent.DefaultLearningGoal holds the default value on creation for the learning_goal field.
	planevent.DefaultLearningGoal = planeventDescLearningGoal.Default.(string)
	// planeventDescTiming is the schema descriptor for timing field.
	planeventDescTiming := planeventFields[5].Descriptor()
	// planevent.DefaultTiming holds the default value on creation for the timing field.
	planevent.DefaultTiming = planeventDescTiming.Default.(string)
	// planeventDescInterests is the schema descriptor for interests field.
	planeventDescInterests := planeventFields[7].Descriptor()
	// planevent.DefaultInterests holds the default value on creation for the interests field.
	planevent.DefaultInterests = planeventDescInterests.Default.(string)
	// planeventDescDifferentiation is the schema descriptor for differentiation field.
	planeventDescDifferentiation := planeventFields[8].Descriptor()
	// planevent.DefaultDifferentiation holds the default value on creation for the differentiation field.
	planevent.DefaultDifferentiation = planeventDescDifferentiation.Default.(bool)
	// planeventDescVisualLanguage is the schema descriptor for visual_language field.
	planeventDescVisualLanguage := planeventFields[9].Descriptor()
	// planevent.DefaultVisualLanguage holds the default value on creation for the visual_language field.
	planevent.DefaultVisualLanguage = planeventDescVisualLanguage.Default.(string)
	// planeventDescHTML is the schema descriptor for html field.
	planeventDescHTML := planeventFields[10].Descriptor()
	// planevent.DefaultHTML holds the default value on creation for the html field.
	planevent.DefaultHTML = planeventDescHTML.Default.(string)
	// planeventDescPromptCount is the schema descriptor for prompt_count field.
	planeventDescPromptCount := planeventFields[11].Descriptor()
	// planevent.DefaultPromptCount holds the default value on creation for the prompt_count field.
	planevent.DefaultPromptCount = planeventDescPromptCount.Default.(int)
	// planeventDescSuccess is the schema descriptor for success field.
	planeventDescSuccess := planeventFields[12].Descriptor()
	// planevent.DefaultSuccess holds the default value on creation for the success field.
	planevent.DefaultSuccess = planeventDescSuccess.Default.(bool)
	// planeventDescErrorMessage is the schema descriptor for error_message field.
	planeventDescErrorMessage := planeventFields[13].Descriptor()
	// planevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	planevent.DefaultErrorMessage = planeventDescErrorMessage.Default.(string)
}
