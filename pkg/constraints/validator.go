package constraints

import (
	"fmt"
	"sort"
	"time"

	"github.com/dd0wney/cluso-netontology/pkg/logging"
	"github.com/dd0wney/cluso-netontology/pkg/metrics"
	"github.com/dd0wney/cluso-netontology/pkg/rdf"
)

// ValidationResult contains the results of validating a graph against constraints
type ValidationResult struct {
	Conforms   bool        // True if no Error severity violations were found
	Violations []Violation // Every violation, sorted by focus node then path
	FocusNodes int         // Distinct focus nodes evaluated
	CheckedAt  time.Time   // When validation was performed
}

// GetViolationsBySeverity returns violations filtered by severity level
func (vr *ValidationResult) GetViolationsBySeverity(severity Severity) []Violation {
	filtered := make([]Violation, 0)
	for _, v := range vr.Violations {
		if v.Severity == severity {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// GetViolationsByType returns violations filtered by type
func (vr *ValidationResult) GetViolationsByType(violationType ViolationType) []Violation {
	filtered := make([]Violation, 0)
	for _, v := range vr.Violations {
		if v.Type == violationType {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// GetViolationsForFocus returns the violations reported on one node
func (vr *ValidationResult) GetViolationsForFocus(focus rdf.Term) []Violation {
	filtered := make([]Violation, 0)
	for _, v := range vr.Violations {
		if v.Focus == focus {
			filtered = append(filtered, v)
		}
	}
	return filtered
}

// Validator manages a set of constraints and validates graphs against them
type Validator struct {
	constraints []Constraint
	logger      logging.Logger
	metrics     *metrics.Registry
}

// Option configures a Validator
type Option func(*Validator)

// WithLogger sets the logger
func WithLogger(l logging.Logger) Option {
	return func(v *Validator) { v.logger = l }
}

// WithMetrics records every run in the given registry
func WithMetrics(r *metrics.Registry) Option {
	return func(v *Validator) { v.metrics = r }
}

// NewValidator creates a new empty validator
func NewValidator(opts ...Option) *Validator {
	v := &Validator{
		constraints: make([]Constraint, 0),
		logger:      logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// AddConstraint adds a constraint to the validator
func (v *Validator) AddConstraint(constraint Constraint) {
	v.constraints = append(v.constraints, constraint)
}

// AddConstraints adds multiple constraints to the validator
func (v *Validator) AddConstraints(constraints []Constraint) {
	v.constraints = append(v.constraints, constraints...)
}

// Validate runs all constraints against the graph and returns the results.
// Every constraint runs; failures do not stop evaluation.
func (v *Validator) Validate(graph GraphReader) (*ValidationResult, error) {
	timer := logging.StartTimer(v.logger, "validation finished", logging.Count(len(v.constraints)))
	result := &ValidationResult{
		Conforms:   true,
		Violations: make([]Violation, 0),
		CheckedAt:  time.Now(),
	}

	focus := make(map[rdf.Term]bool)
	for _, constraint := range v.constraints {
		if s, ok := constraint.(scoped); ok {
			for _, n := range s.Target().FocusNodes(graph) {
				focus[n] = true
			}
		}

		violations, err := constraint.Validate(graph)
		if err != nil {
			elapsed := timer.EndError(err)
			if v.metrics != nil {
				v.metrics.RecordValidation(metrics.ResultError, elapsed, len(focus))
			}
			return nil, fmt.Errorf("constraint %s: %w", constraint.Name(), err)
		}
		result.Violations = append(result.Violations, violations...)
	}

	sortViolations(result.Violations)
	for _, violation := range result.Violations {
		if violation.Severity == Error {
			result.Conforms = false
		}
		if v.metrics != nil {
			v.metrics.RecordViolation(violation.Type.String(), violation.Severity.String())
		}
	}
	result.FocusNodes = len(focus)

	elapsed := timer.End(
		logging.Bool("conforms", result.Conforms),
		logging.Violations(len(result.Violations)))
	if v.metrics != nil {
		outcome := metrics.ResultConforms
		if !result.Conforms {
			outcome = metrics.ResultViolations
		}
		v.metrics.RecordValidation(outcome, elapsed, result.FocusNodes)
	}
	return result, nil
}

// GetConstraints returns all constraints in the validator
func (v *Validator) GetConstraints() []Constraint {
	return v.constraints
}

// ClearConstraints removes all constraints from the validator
func (v *Validator) ClearConstraints() {
	v.constraints = make([]Constraint, 0)
}

func sortViolations(vs []Violation) {
	sort.SliceStable(vs, func(i, j int) bool {
		a, b := vs[i], vs[j]
		if a.Focus != b.Focus {
			return a.Focus.String() < b.Focus.String()
		}
		if a.Path != b.Path {
			return a.Path.String() < b.Path.String()
		}
		if a.Type != b.Type {
			return a.Type < b.Type
		}
		if a.Value != b.Value {
			return a.Value.String() < b.Value.String()
		}
		return a.Constraint < b.Constraint
	})
}
