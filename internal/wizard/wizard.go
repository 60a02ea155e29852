// Package wizard models the onboarding flow as an explicit state machine.
// Clients hold the state and round-trip it; the server only validates
// transitions. Steps advance one at a time and forward moves are guarded by
// the per-step field checks, so a step can never be skipped.
package wizard

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/ai-academy/academyhub/internal/models"
)

type Step string

const (
	StepWelcome    Step = "welcome"
	StepProfile    Step = "profile"
	StepAssignment Step = "assignment"
	StepComplete   Step = "complete"
)

var steps = []Step{StepWelcome, StepProfile, StepAssignment, StepComplete}

func Steps() []Step {
	return slices.Clone(steps)
}

func (s Step) Valid() bool {
	return slices.Contains(steps, s)
}

// Profile carries the fields collected across the wizard. Only the fields
// the current step's guard looks at need to be set.
type Profile struct {
	Name     string        `json:"name"`
	Nickname string        `json:"nickname"`
	Role     models.Role   `json:"role"`
	Team     models.Team   `json:"team"`
	Stream   models.Stream `json:"stream"`
}

// GuardError reports why a forward transition was refused. The wizard stays
// on the current step.
type GuardError struct {
	Field   string
	Message string
}

func (e *GuardError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// ErrInvalidStep is returned for a step name outside the sequence.
var ErrInvalidStep = fmt.Errorf("invalid wizard step")

var nicknamePattern = regexp.MustCompile(`^[a-z0-9_-]{2,30}$`)

// Next advances the wizard one step forward if the current step's guard
// accepts the profile. The final step is terminal.
func Next(current Step, profile *Profile) (Step, error) {
	idx := slices.Index(steps, current)
	if idx < 0 {
		return current, ErrInvalidStep
	}
	if idx == len(steps)-1 {
		return current, nil
	}

	if err := guard(current, profile); err != nil {
		return current, err
	}
	return steps[idx+1], nil
}

// Back moves one step backward, bounded at the first step.
func Back(current Step) (Step, error) {
	idx := slices.Index(steps, current)
	if idx < 0 {
		return current, ErrInvalidStep
	}
	if idx == 0 {
		return current, nil
	}
	return steps[idx-1], nil
}

func guard(current Step, profile *Profile) error {
	switch current {
	case StepProfile:
		if profile.Name == "" {
			return &GuardError{Field: "name", Message: "is required"}
		}
		if !nicknamePattern.MatchString(profile.Nickname) {
			return &GuardError{Field: "nickname", Message: "must be 2-30 characters of lowercase letters, digits, _ or -"}
		}
	case StepAssignment:
		if !slices.Contains(models.Roles(), profile.Role) {
			return &GuardError{Field: "role", Message: "must be a known role"}
		}
		if !slices.Contains(models.Teams(), profile.Team) {
			return &GuardError{Field: "team", Message: "must be a known team"}
		}
		if !slices.Contains(models.Streams(), profile.Stream) {
			return &GuardError{Field: "stream", Message: "must be a known stream"}
		}
	}
	return nil
}
