package producer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"time"

	"ForexPulse/internal/domain/models"
	domrepo "ForexPulse/internal/domain/repository"
	applogger "ForexPulse/pkg/logger"
	"ForexPulse/pkg/util"
)

// ScriptProducer invokes an external signal-generation script and parses its
// stdout as a JSON array of signal records. Any failure mode (spawn error,
// non-zero exit, timeout, malformed output, empty batch) is returned as an
// error; the caller decides how to recover.
type ScriptProducer struct {
	command string
	args    []string
	timeout time.Duration
	logger  *applogger.Logger
}

// NewScriptProducer creates a subprocess-backed producer.
func NewScriptProducer(command string, args []string, timeout time.Duration, logger *applogger.Logger) *ScriptProducer {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ScriptProducer{command: command, args: args, timeout: timeout, logger: logger}
}

// Produce runs the script under a bounded deadline and parses its output.
func (p *ScriptProducer) Produce(ctx context.Context) ([]models.SignalRecord, error) {
	runCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, p.command, p.args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 && p.logger != nil {
			p.logger.Warn("producer script stderr",
				applogger.String("command", p.command),
				applogger.String("stderr", stderr.String()),
			)
		}
		return nil, fmt.Errorf("run producer script %s: %w", p.command, err)
	}

	var raw []scriptRecord
	if err := json.Unmarshal(stdout.Bytes(), &raw); err != nil {
		return nil, fmt.Errorf("parse producer output: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("producer script emitted no signals")
	}

	now := time.Now().UTC()
	records := make([]models.SignalRecord, 0, len(raw))
	for _, r := range raw {
		rec := r.SignalRecord
		rec.Timeframe = string(domrepo.NormalizeTimeframe(rec.Timeframe))
		rec.Timestamp = util.ParseTimeDefault(r.Timestamp, now)
		records = append(records, rec)
	}
	return records, nil
}

// scriptRecord shadows the timestamp with a string so scripts may emit
// RFC3339, unix seconds, or omit it entirely.
type scriptRecord struct {
	models.SignalRecord
	Timestamp string `json:"timestamp"`
}

var _ domrepo.SignalProducer = (*ScriptProducer)(nil)
