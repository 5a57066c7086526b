package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/gstwebsrc/internal/application/port"
	"github.com/bnema/gstwebsrc/internal/logging"
)

// GeneratePluginListUseCase runs the probing tool for a target and persists
// its output as the generated plugin list.
type GeneratePluginListUseCase struct {
	tool  port.DiscoveryTool
	store port.ArtifactStore
}

// NewGeneratePluginListUseCase creates the use case.
func NewGeneratePluginListUseCase(tool port.DiscoveryTool, store port.ArtifactStore) *GeneratePluginListUseCase {
	return &GeneratePluginListUseCase{tool: tool, store: store}
}

// GeneratePluginListInput contains parameters for one generation run.
type GeneratePluginListInput struct {
	Script string
	Target string
	// Stamp fingerprints Script's content and Target.
	Stamp string
	Force bool
}

// GeneratePluginListOutput describes what the run did.
type GeneratePluginListOutput struct {
	Path        string
	Interpreter string
	Bytes       int
	// Skipped is true when the artifact was already current.
	Skipped bool
}

// Execute regenerates the artifact unless it is current for the input stamp.
// Nothing is written when the tool cannot be found or fails.
func (uc *GeneratePluginListUseCase) Execute(
	ctx context.Context,
	input GeneratePluginListInput,
) (*GeneratePluginListOutput, error) {
	log := logging.FromContext(ctx).With().Str("script", input.Script).Logger()
	out := &GeneratePluginListOutput{Path: uc.store.ArtifactPath()}

	if !input.Force && input.Stamp != "" {
		current, err := uc.store.UpToDate(input.Stamp)
		if err != nil {
			log.Warn().Err(err).Msg("cannot read previous stamp, regenerating")
		} else if current {
			log.Debug().Str("path", out.Path).Msg("plugin list up to date")
			out.Skipped = true
			return out, nil
		}
	}

	interpreter, err := uc.tool.FindInterpreter(ctx)
	if err != nil {
		return nil, err
	}
	out.Interpreter = interpreter
	log.Debug().Str("interpreter", interpreter).Msg("using interpreter")

	artifact, err := uc.tool.Discover(ctx, interpreter, input.Script, input.Target)
	if err != nil {
		return nil, err
	}

	if err := uc.store.Write(ctx, artifact); err != nil {
		return nil, err
	}
	out.Bytes = len(artifact)

	if input.Stamp != "" {
		if err := uc.store.WriteStamp(input.Stamp); err != nil {
			return nil, fmt.Errorf("record stamp: %w", err)
		}
	}

	log.Info().Str("path", out.Path).Int("bytes", out.Bytes).Msg("generated plugin list")
	return out, nil
}
