package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/gstwebsrc/internal/application/port"
	"github.com/bnema/gstwebsrc/internal/application/port/mocks"
	"github.com/bnema/gstwebsrc/internal/application/usecase"
)

const artifactPath = "/out/zz_generated_gstplugins.go"

func TestGeneratePluginList_WritesToolOutputVerbatim(t *testing.T) {
	tool := mocks.NewMockDiscoveryTool(t)
	store := mocks.NewMockArtifactStore(t)
	src := []byte("package gstplugins\n\nvar Plugins = []string{\"coreelements\"}\n")

	store.EXPECT().ArtifactPath().Return(artifactPath)
	store.EXPECT().UpToDate("abc").Return(false, nil).Once()
	tool.EXPECT().FindInterpreter(mock.Anything).Return("python3", nil).Once()
	tool.EXPECT().Discover(mock.Anything, "python3", "probe.py", "linux-amd64").Return(src, nil).Once()
	store.EXPECT().Write(mock.Anything, src).Return(nil).Once()
	store.EXPECT().WriteStamp("abc").Return(nil).Once()

	uc := usecase.NewGeneratePluginListUseCase(tool, store)
	out, err := uc.Execute(context.Background(), usecase.GeneratePluginListInput{
		Script: "probe.py",
		Target: "linux-amd64",
		Stamp:  "abc",
	})

	require.NoError(t, err)
	assert.False(t, out.Skipped)
	assert.Equal(t, "python3", out.Interpreter)
	assert.Equal(t, len(src), out.Bytes)
	assert.Equal(t, artifactPath, out.Path)
}

func TestGeneratePluginList_SkipsWhenCurrent(t *testing.T) {
	tool := mocks.NewMockDiscoveryTool(t)
	store := mocks.NewMockArtifactStore(t)

	store.EXPECT().ArtifactPath().Return(artifactPath)
	store.EXPECT().UpToDate("abc").Return(true, nil).Once()

	out, err := usecase.NewGeneratePluginListUseCase(tool, store).Execute(context.Background(), usecase.GeneratePluginListInput{
		Script: "probe.py",
		Target: "linux-amd64",
		Stamp:  "abc",
	})

	require.NoError(t, err)
	assert.True(t, out.Skipped)
}

func TestGeneratePluginList_ForceIgnoresStamp(t *testing.T) {
	tool := mocks.NewMockDiscoveryTool(t)
	store := mocks.NewMockArtifactStore(t)

	store.EXPECT().ArtifactPath().Return(artifactPath)
	tool.EXPECT().FindInterpreter(mock.Anything).Return("python3", nil).Once()
	tool.EXPECT().Discover(mock.Anything, "python3", "probe.py", "linux-amd64").Return([]byte("x"), nil).Once()
	store.EXPECT().Write(mock.Anything, []byte("x")).Return(nil).Once()
	store.EXPECT().WriteStamp("abc").Return(nil).Once()

	out, err := usecase.NewGeneratePluginListUseCase(tool, store).Execute(context.Background(), usecase.GeneratePluginListInput{
		Script: "probe.py",
		Target: "linux-amd64",
		Stamp:  "abc",
		Force:  true,
	})

	require.NoError(t, err)
	assert.False(t, out.Skipped)
}

func TestGeneratePluginList_UnreadableStampRegenerates(t *testing.T) {
	tool := mocks.NewMockDiscoveryTool(t)
	store := mocks.NewMockArtifactStore(t)

	store.EXPECT().ArtifactPath().Return(artifactPath)
	store.EXPECT().UpToDate("abc").Return(false, errors.New("permission denied")).Once()
	tool.EXPECT().FindInterpreter(mock.Anything).Return("python3", nil).Once()
	tool.EXPECT().Discover(mock.Anything, "python3", "probe.py", "t").Return([]byte("x"), nil).Once()
	store.EXPECT().Write(mock.Anything, []byte("x")).Return(nil).Once()
	store.EXPECT().WriteStamp("abc").Return(nil).Once()

	_, err := usecase.NewGeneratePluginListUseCase(tool, store).Execute(context.Background(), usecase.GeneratePluginListInput{
		Script: "probe.py",
		Target: "t",
		Stamp:  "abc",
	})
	require.NoError(t, err)
}

func TestGeneratePluginList_NoArtifactOnFailure(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(tool *mocks.MockDiscoveryTool)
		wantErr error
	}{
		{
			name: "interpreter not found",
			setup: func(tool *mocks.MockDiscoveryTool) {
				tool.EXPECT().FindInterpreter(mock.Anything).Return("", &port.DiscoveryError{
					Kind:  port.DiscoveryErrorKindToolNotFound,
					Tried: []string{"python3.8", "python3", "python"},
				}).Once()
			},
			wantErr: port.ErrDiscoveryToolNotFound,
		},
		{
			name: "tool exits non-zero",
			setup: func(tool *mocks.MockDiscoveryTool) {
				tool.EXPECT().FindInterpreter(mock.Anything).Return("python3", nil).Once()
				tool.EXPECT().Discover(mock.Anything, "python3", "probe.py", "t").Return(nil, &port.DiscoveryError{
					Kind:     port.DiscoveryErrorKindToolFailed,
					ExitCode: 2,
					Stdout:   "partial",
					Stderr:   "boom",
				}).Once()
			},
			wantErr: port.ErrDiscoveryToolFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tool := mocks.NewMockDiscoveryTool(t)
			store := mocks.NewMockArtifactStore(t)
			store.EXPECT().ArtifactPath().Return(artifactPath)
			tt.setup(tool)

			out, err := usecase.NewGeneratePluginListUseCase(tool, store).Execute(context.Background(), usecase.GeneratePluginListInput{
				Script: "probe.py",
				Target: "t",
				Force:  true,
			})

			require.Error(t, err)
			assert.Nil(t, out)
			assert.ErrorIs(t, err, tt.wantErr)
			store.AssertNotCalled(t, "Write", mock.Anything, mock.Anything)
			store.AssertNotCalled(t, "WriteStamp", mock.Anything)
		})
	}
}

func TestGeneratePluginList_WriteFailure(t *testing.T) {
	tool := mocks.NewMockDiscoveryTool(t)
	store := mocks.NewMockArtifactStore(t)

	store.EXPECT().ArtifactPath().Return(artifactPath)
	tool.EXPECT().FindInterpreter(mock.Anything).Return("python3", nil).Once()
	tool.EXPECT().Discover(mock.Anything, "python3", "probe.py", "t").Return([]byte("x"), nil).Once()
	store.EXPECT().Write(mock.Anything, []byte("x")).Return(&port.DiscoveryError{
		Kind: port.DiscoveryErrorKindArtifactWriteFailed,
		Path: artifactPath,
	}).Once()

	_, err := usecase.NewGeneratePluginListUseCase(tool, store).Execute(context.Background(), usecase.GeneratePluginListInput{
		Script: "probe.py",
		Target: "t",
		Stamp:  "abc",
		Force:  true,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, port.ErrArtifactWriteFailed)
	store.AssertNotCalled(t, "WriteStamp", mock.Anything)
}
