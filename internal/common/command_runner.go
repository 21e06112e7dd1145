package common

import (
	"context"
	"fmt"

	"cvision/internal/errors"
)

// CreateInputFunc defines how to create the engine input from file contents.
type CreateInputFunc[Input any] func(contents []string) (Input, error)

// LogDetailsFunc defines how to log the start of an operation.
type LogDetailsFunc[Input any] func(input Input, cfg CommandConfig)

// EngineOperationFunc is a generic signature for any scoring, matching, or
// generation operation.
type EngineOperationFunc[Input, Output any] func(context.Context, Input) (Output, error)

// RunEngineCommand encapsulates the common logic for file-based CLI commands:
// validate and read input files, build the operation input, run it, and hand
// the result to the output pipeline.
func RunEngineCommand[Input, Output any](
	ctx context.Context,
	logger *errors.Logger,
	cmdConfig CommandConfig,
	args []string,
	createInput CreateInputFunc[Input],
	operation EngineOperationFunc[Input, Output],
	logDetails LogDetailsFunc[Input],
) error {
	fileProcessor := NewFileProcessor(logger)
	outputHandler := NewOutputHandler(logger)

	contents, err := fileProcessor.ValidateAndReadFiles(args...)
	if err != nil {
		return err
	}

	input, err := createInput(contents)
	if err != nil {
		return fmt.Errorf("failed to create input from file contents: %w", err)
	}

	logDetails(input, cmdConfig)

	result, err := operation(ctx, input)
	if err != nil {
		return err
	}

	return outputHandler.HandleOutput(result, cmdConfig)
}
