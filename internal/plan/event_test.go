package plan

import (
	"testing"

	"scopedraft/internal/stream"
)

func TestParseToolEvent(t *testing.T) {
	t.Run("create_plan", func(t *testing.T) {
		ev := ParseToolEvent(stream.ToolInvocation{
			ToolName: "create_plan",
			Args: map[string]any{
				"title": "Plan",
				"steps": []any{
					map[string]any{"id": "s1", "label": "A", "status": "completed"},
					map[string]any{"id": "s2", "label": "B"},
				},
			},
		})
		create, ok := ev.(CreatePlan)
		if !ok {
			t.Fatalf("got %T, want CreatePlan", ev)
		}
		if create.Title != "Plan" || len(create.Steps) != 2 {
			t.Errorf("parsed = %+v", create)
		}
		// The claimed "completed" status is simply absent from the seed.
		if create.Steps[0].ID != "s1" || create.Steps[0].Label != "A" {
			t.Errorf("seed = %+v", create.Steps[0])
		}
	})

	t.Run("update_step with details", func(t *testing.T) {
		ev := ParseToolEvent(stream.ToolInvocation{
			ToolName: "update_step",
			Args:     map[string]any{"stepId": "s1", "status": "running", "details": "halfway"},
		})
		update, ok := ev.(UpdateStep)
		if !ok {
			t.Fatalf("got %T, want UpdateStep", ev)
		}
		if update.StepID != "s1" || update.Status != StatusRunning {
			t.Errorf("parsed = %+v", update)
		}
		if !update.HasDetails || update.Details != "halfway" {
			t.Errorf("details = %+v", update)
		}
	})

	t.Run("update_step without details", func(t *testing.T) {
		ev := ParseToolEvent(stream.ToolInvocation{
			ToolName: "update_step",
			Args:     map[string]any{"stepId": "s1", "status": "completed"},
		})
		update := ev.(UpdateStep)
		if update.HasDetails {
			t.Error("HasDetails set without a details key")
		}
	})

	t.Run("update_step missing stepId degrades to Unknown", func(t *testing.T) {
		ev := ParseToolEvent(stream.ToolInvocation{
			ToolName: "update_step",
			Args:     map[string]any{"status": "completed"},
		})
		if _, ok := ev.(Unknown); !ok {
			t.Fatalf("got %T, want Unknown", ev)
		}
	})

	t.Run("render_artifact", func(t *testing.T) {
		ev := ParseToolEvent(stream.ToolInvocation{
			ToolName: "render_artifact",
			Args:     map[string]any{"title": "Doc", "kind": "html", "content": "<p>x</p>"},
		})
		render, ok := ev.(RenderArtifact)
		if !ok {
			t.Fatalf("got %T, want RenderArtifact", ev)
		}
		if render.Kind != KindHTML || render.Content != "<p>x</p>" {
			t.Errorf("parsed = %+v", render)
		}
	})

	t.Run("unknown tool name", func(t *testing.T) {
		ev := ParseToolEvent(stream.ToolInvocation{ToolName: "telemetry_ping"})
		unknown, ok := ev.(Unknown)
		if !ok {
			t.Fatalf("got %T, want Unknown", ev)
		}
		if unknown.ToolName != "telemetry_ping" {
			t.Errorf("tool name = %q", unknown.ToolName)
		}
	})

	t.Run("malformed shapes never panic", func(t *testing.T) {
		cases := []map[string]any{
			nil,
			{"title": 42, "steps": "not a list"},
			{"steps": []any{"not a map", 7}},
			{"stepId": 12},
		}
		for _, args := range cases {
			for _, name := range []string{"create_plan", "update_step", "render_artifact"} {
				ParseToolEvent(stream.ToolInvocation{ToolName: name, Args: args})
			}
		}
	})
}
