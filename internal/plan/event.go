// Package plan reconstructs an assistant's task plan and artifact preview
// from the streamed tool-invocation events of one in-flight message.
//
// The reducer lives in Fold and is pure; Tracker binds it to a message id and
// owns the live view.
package plan

import (
	"scopedraft/internal/stream"
)

// Tool names recognized by the folder. Anything else folds as Unknown.
const (
	ToolCreatePlan     = "create_plan"
	ToolUpdateStep     = "update_step"
	ToolRenderArtifact = "render_artifact"
)

// StepStatus is the lifecycle state of one plan step. Update events assign
// whatever status string they carry; display layers treat unrecognized values
// as pending-like rather than rejecting them.
type StepStatus string

const (
	StatusPending   StepStatus = "pending"
	StatusRunning   StepStatus = "running"
	StatusCompleted StepStatus = "completed"
	StatusFailed    StepStatus = "failed"
)

// ArtifactKind discriminates artifact payloads.
type ArtifactKind string

const (
	KindHTML      ArtifactKind = "html"
	KindMarkdown  ArtifactKind = "markdown"
	KindComponent ArtifactKind = "component"
)

// ToolEvent is the tagged union of events the folder understands.
type ToolEvent interface {
	isToolEvent()
}

// StepSeed is one incoming step of a create_plan event. Any status the event
// claims is discarded; created steps always start pending.
type StepSeed struct {
	ID      string
	Label   string
	Details string
}

// CreatePlan replaces the whole plan.
type CreatePlan struct {
	Title string
	Steps []StepSeed
}

// UpdateStep changes the status (and optionally details) of one step by id.
type UpdateStep struct {
	StepID     string
	Status     StepStatus
	Details    string
	HasDetails bool
}

// RenderArtifact replaces the in-flight message's artifact.
type RenderArtifact struct {
	Title   string
	Kind    ArtifactKind
	Content string
}

// Unknown covers unrecognized tool names and malformed payloads. Folding it
// is a no-op; it exists so the switch in Fold stays exhaustive.
type Unknown struct {
	ToolName string
}

func (CreatePlan) isToolEvent()     {}
func (UpdateStep) isToolEvent()     {}
func (RenderArtifact) isToolEvent() {}
func (Unknown) isToolEvent()        {}

// ParseToolEvent decodes a duck-typed invocation record into the event union.
// Malformed shapes degrade to Unknown; this function never panics on any
// args map.
func ParseToolEvent(inv stream.ToolInvocation) ToolEvent {
	switch inv.ToolName {
	case ToolCreatePlan:
		return CreatePlan{
			Title: stringArg(inv.Args, "title"),
			Steps: parseSteps(inv.Args["steps"]),
		}
	case ToolUpdateStep:
		stepID := stringArg(inv.Args, "stepId")
		if stepID == "" {
			return Unknown{ToolName: inv.ToolName}
		}
		details, hasDetails := inv.Args["details"]
		return UpdateStep{
			StepID:     stepID,
			Status:     StepStatus(stringArg(inv.Args, "status")),
			Details:    asString(details),
			HasDetails: hasDetails,
		}
	case ToolRenderArtifact:
		return RenderArtifact{
			Title:   stringArg(inv.Args, "title"),
			Kind:    ArtifactKind(stringArg(inv.Args, "kind")),
			Content: stringArg(inv.Args, "content"),
		}
	default:
		return Unknown{ToolName: inv.ToolName}
	}
}

func parseSteps(raw any) []StepSeed {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	seeds := make([]StepSeed, 0, len(items))
	for _, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			continue
		}
		seeds = append(seeds, StepSeed{
			ID:      asString(fields["id"]),
			Label:   asString(fields["label"]),
			Details: asString(fields["details"]),
		})
	}
	return seeds
}

func stringArg(args map[string]any, key string) string {
	if args == nil {
		return ""
	}
	return asString(args[key])
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
