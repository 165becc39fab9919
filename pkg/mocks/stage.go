package mocks

import (
	"context"

	"github.com/user/drivereel/pkg/pipeline"
)

// ConvertStage is a mock implementation of the convert stage for driving
// the orchestrator in tests.
type ConvertStage struct {
	ExecuteFunc func(ctx context.Context, input pipeline.ConvertInput) (pipeline.ConvertResult, error)

	// ExecuteCalls records the inputs passed to Execute, in order.
	ExecuteCalls []pipeline.ConvertInput
}

func (m *ConvertStage) Execute(ctx context.Context, input pipeline.ConvertInput) (pipeline.ConvertResult, error) {
	m.ExecuteCalls = append(m.ExecuteCalls, input)
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, input)
	}
	return pipeline.ConvertResult{
		OutputPath: input.OutputPath,
		FrameCount: 1,
		Width:      4,
		Height:     2,
	}, nil
}

var _ pipeline.Stage[pipeline.ConvertInput, pipeline.ConvertResult] = (*ConvertStage)(nil)
