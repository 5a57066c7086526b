package usecase

import (
	"context"

	"github.com/bnema/gstwebsrc/internal/application/port"
	"github.com/bnema/gstwebsrc/internal/domain/entity"
	"github.com/bnema/gstwebsrc/internal/logging"
)

// Environment variables that override engine options when embedded.
const (
	EnvMultiprocess = "WEBSRC_GST_MULTIPROCESS"
	EnvSandbox      = "WEBSRC_GST_SANDBOX"
)

// ReconcileOptions derives the options the embedded engine runs with.
//
// Multiprocess defaults to off regardless of the baseline; Sandbox defaults
// to the baseline's value; ExitAfterLoad is always off since a source
// element must never end its own session. Other fields are copied.
func ReconcileOptions(baseline entity.EngineOptions, r port.EnvReader) entity.EngineOptions {
	out := baseline.Clone()
	out.Multiprocess = EnvBooleanOr(r, EnvMultiprocess, false)
	out.Sandbox = EnvBooleanOr(r, EnvSandbox, baseline.Sandbox)
	out.ExitAfterLoad = false
	return out
}

// OverrideStatus explains how one override variable resolved.
type OverrideStatus struct {
	Variable string
	Set      bool
	Raw      string
	Default  bool
	Value    bool
	// Err is the strict-mode failure that made Value fall back to Default.
	Err error
}

// ReconcileOptionsUseCase reconciles options and explains each override.
type ReconcileOptionsUseCase struct {
	env port.EnvReader
}

// NewReconcileOptionsUseCase creates a new ReconcileOptionsUseCase.
func NewReconcileOptionsUseCase(r port.EnvReader) *ReconcileOptionsUseCase {
	return &ReconcileOptionsUseCase{env: r}
}

// ReconcileOptionsInput contains the host baseline.
type ReconcileOptionsInput struct {
	Baseline entity.EngineOptions
}

// ReconcileOptionsOutput contains the reconciled options and per-variable
// diagnostics.
type ReconcileOptionsOutput struct {
	Baseline   entity.EngineOptions
	Reconciled entity.EngineOptions
	Overrides  []OverrideStatus
}

// Execute reconciles the baseline against the environment.
func (uc *ReconcileOptionsUseCase) Execute(ctx context.Context, input ReconcileOptionsInput) (*ReconcileOptionsOutput, error) {
	log := logging.FromContext(ctx)

	overrides := []OverrideStatus{
		uc.explain(EnvMultiprocess, false),
		uc.explain(EnvSandbox, input.Baseline.Sandbox),
	}
	for _, o := range overrides {
		if o.Err != nil {
			log.Warn().Err(o.Err).Str("variable", o.Variable).Msg("ignoring malformed override")
		}
	}

	return &ReconcileOptionsOutput{
		Baseline:   input.Baseline.Clone(),
		Reconciled: ReconcileOptions(input.Baseline, uc.env),
		Overrides:  overrides,
	}, nil
}

func (uc *ReconcileOptionsUseCase) explain(key string, def bool) OverrideStatus {
	raw, set := uc.env.LookupEnv(key)
	v, err := EnvBoolean(uc.env, key, def)
	if err != nil {
		v = def
	}
	return OverrideStatus{
		Variable: key,
		Set:      set,
		Raw:      raw,
		Default:  def,
		Value:    v,
		Err:      err,
	}
}
