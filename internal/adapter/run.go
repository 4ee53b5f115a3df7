package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/wheelibin/smarthub-adapter/internal/config"
	"github.com/wheelibin/smarthub-adapter/internal/constants"
	"github.com/wheelibin/smarthub-adapter/internal/metrics"
	"github.com/wheelibin/smarthub-adapter/internal/models"
)

var ErrUnknownMethod = errors.New("unknown method")

// Run executes one host method, reading the adapter instance from inputPath and
// writing the json result to outputPath.
func Run(ctx context.Context, logger *log.Logger, settings config.Settings, method string, inputPath string, outputPath string) error {

	var output any

	switch method {
	case constants.MethodAdapterDefinition:
		output = Definition()

	case constants.MethodTest, constants.MethodCollect, constants.MethodEndpointURLs:
		instance, err := config.ReadInstance(inputPath)
		if err != nil {
			return err
		}
		a := NewForInstance(logger, settings, *instance)

		switch method {
		case constants.MethodTest:
			output = a.Test(ctx)
		case constants.MethodEndpointURLs:
			output = a.Endpoints()
		case constants.MethodCollect:
			start := time.Now()
			result := a.Collect(ctx)
			if settings.TextfilePath != "" {
				exporter := metrics.NewTextfileExporter()
				exporter.Record(result, time.Since(start), time.Now())
				if err := exporter.Write(settings.TextfilePath); err != nil {
					logger.Error("Unable to write metrics textfile", "err", err)
				}
			}
			output = result
		}

	default:
		return fmt.Errorf("%w: %s", ErrUnknownMethod, method)
	}

	data, err := encodeResult(logger, method, output)
	if err != nil {
		return err
	}
	logger.Debug("Returning result", "method", method, "result", string(data))

	return safeWriteFile(outputPath, data, 0o644)
}

// encodeResult marshals output. A test or collect result that cannot be encoded is
// replaced by one carrying only the encoding error, so the host still gets a document.
func encodeResult(logger *log.Logger, method string, output any) ([]byte, error) {
	data, err := json.Marshal(output)
	if err == nil {
		return data, nil
	}
	logger.Error("Unable to encode result", "method", method, "err", err)

	switch method {
	case constants.MethodCollect:
		fallback := models.NewCollectResult()
		fallback.WithError(fmt.Sprintf("Unexpected collection error: %s", err))
		return json.Marshal(fallback)
	case constants.MethodTest:
		fallback := &models.TestResult{}
		fallback.WithError(fmt.Sprintf("Unexpected connection test error: %s", err))
		return json.Marshal(fallback)
	default:
		return nil, fmt.Errorf("encode %s result: %w", method, err)
	}
}

// safeWriteFile writes data next to name and renames it into place, so readers
// never see a partially written result.
func safeWriteFile(name string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(name), filepath.Base(name)+"-*.new")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write new file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close new file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("failed to set permissions on new file: %w", err)
	}

	if err := os.Rename(tmp.Name(), name); err != nil {
		return fmt.Errorf("failed to move new file to file location: %w", err)
	}

	return nil
}
