package plan

// TaskStep is one step of the live plan.
type TaskStep struct {
	ID      string     `json:"id"`
	Label   string     `json:"label"`
	Status  StepStatus `json:"status"`
	Details string     `json:"details,omitempty"`
}

// TaskPlan is the named ordered checklist an assistant populates during one
// response turn. It lives only for that turn and is rebuilt from the event
// stream alone.
type TaskPlan struct {
	Title string     `json:"title"`
	Steps []TaskStep `json:"steps"`
}

// CompletedCount returns how many steps have completed.
func (p *TaskPlan) CompletedCount() int {
	count := 0
	for _, step := range p.Steps {
		if step.Status == StatusCompleted {
			count++
		}
	}
	return count
}

// Artifact is the single renderable side-payload of one assistant turn.
type Artifact struct {
	Title   string       `json:"title"`
	Kind    ArtifactKind `json:"kind"`
	Content string       `json:"content"`
}

// Snapshot is the folded state for one in-flight message: the plan plus at
// most one artifact. The zero value is the empty state.
type Snapshot struct {
	Plan     *TaskPlan
	Artifact *Artifact
}

// Fold applies one event to a snapshot and returns the next snapshot. It is
// pure: prior is never mutated, and folding the same event twice yields the
// same state as folding it once.
func Fold(prior Snapshot, ev ToolEvent) Snapshot {
	switch e := ev.(type) {
	case CreatePlan:
		// Replace, never merge. Incoming steps always start pending no
		// matter what status the event claims.
		steps := make([]TaskStep, 0, len(e.Steps))
		for _, seed := range e.Steps {
			steps = append(steps, TaskStep{
				ID:      seed.ID,
				Label:   seed.Label,
				Status:  StatusPending,
				Details: seed.Details,
			})
		}
		return Snapshot{
			Plan:     &TaskPlan{Title: e.Title, Steps: steps},
			Artifact: prior.Artifact,
		}

	case UpdateStep:
		if prior.Plan == nil {
			// The step's plan no longer exists (or never arrived);
			// dropped, not queued.
			return prior
		}
		steps := make([]TaskStep, len(prior.Plan.Steps))
		copy(steps, prior.Plan.Steps)
		for i := range steps {
			if steps[i].ID != e.StepID {
				continue
			}
			steps[i].Status = e.Status
			if e.HasDetails {
				steps[i].Details = e.Details
			}
		}
		return Snapshot{
			Plan:     &TaskPlan{Title: prior.Plan.Title, Steps: steps},
			Artifact: prior.Artifact,
		}

	case RenderArtifact:
		return Snapshot{
			Plan:     prior.Plan,
			Artifact: &Artifact{Title: e.Title, Kind: e.Kind, Content: e.Content},
		}

	case Unknown:
		return prior

	default:
		return prior
	}
}
