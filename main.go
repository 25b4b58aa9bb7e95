//go:build !js && !wasm

// Command portfolio builds the browser bundle and serves it for local development.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/Its-donkey/portfolio/logging"
)

const webDir = "web"

type procConfig struct {
	Name string
	Args []string
	Dir  string
	Env  []string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := logging.New("portfolio", logging.ParseLevel(os.Getenv("PORTFOLIO_LOG_LEVEL")), os.Stdout)

	steps := []procConfig{
		{
			Name: "build-ui-wasm",
			Args: []string{"go", "build", "-o", filepath.Join(webDir, "main.wasm"), "./cmd/ui-wasm"},
			Env:  []string{"GOOS=js", "GOARCH=wasm"},
		},
		{
			Name: "check-markup",
			Args: []string{"go", "run", "./cmd/ui-serve", "check", filepath.Join(webDir, "index.html")},
		},
	}
	services := []procConfig{
		{
			Name: "ui",
			Args: []string{"go", "run", "./cmd/ui-serve", "serve", "--listen", "127.0.0.1:4173", "--dir", webDir, "--check=false"},
		},
	}

	if err := runSteps(ctx, logger, steps); err != nil {
		logger.Error("runner", "build failed", err, nil)
		os.Exit(1)
	}
	if err := copyWasmExec(ctx, webDir); err != nil {
		logger.Warn("runner", "wasm_exec.js not refreshed", map[string]any{"error": err.Error()})
	}
	if err := runAll(ctx, logger, services); err != nil {
		logger.Error("runner", "service exited", err, nil)
		os.Exit(1)
	}
}

func command(ctx context.Context, cfg procConfig) *exec.Cmd {
	cmd := exec.CommandContext(ctx, cfg.Args[0], cfg.Args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if cfg.Dir != "" {
		cmd.Dir = cfg.Dir
	}
	if len(cfg.Env) > 0 {
		cmd.Env = append(append([]string{}, os.Environ()...), cfg.Env...)
	}
	return cmd
}

// runSteps runs each process to completion in order and stops at the first failure.
func runSteps(ctx context.Context, logger *logging.Logger, steps []procConfig) error {
	for _, cfg := range steps {
		start := time.Now()
		if err := command(ctx, cfg).Run(); err != nil {
			return fmt.Errorf("%s: %w", cfg.Name, err)
		}
		logger.Info("runner", "step finished", map[string]any{
			"step":        cfg.Name,
			"duration_ms": time.Since(start).Milliseconds(),
		})
	}
	return nil
}

// runAll runs long-lived processes until one fails or ctx is cancelled.
func runAll(ctx context.Context, logger *logging.Logger, procs []procConfig) error {
	if len(procs) == 0 {
		return errors.New("no processes configured")
	}
	var wg sync.WaitGroup
	errCh := make(chan error, len(procs))

	for _, cfg := range procs {
		wg.Add(1)
		go func(cfg procConfig) {
			defer wg.Done()
			cmd := command(ctx, cfg)
			if err := cmd.Start(); err != nil {
				errCh <- fmt.Errorf("%s start: %w", cfg.Name, err)
				return
			}
			logger.Info("runner", "service started", map[string]any{"service": cfg.Name, "pid": cmd.Process.Pid})
			if err := cmd.Wait(); err != nil {
				select {
				case <-ctx.Done():
					return
				default:
				}
				errCh <- fmt.Errorf("%s exited: %w", cfg.Name, err)
			}
		}(cfg)
	}

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-ctx.Done():
		select {
		case <-done:
		case <-time.After(2 * time.Second):
		}
	case err := <-errCh:
		return err
	case <-done:
	}
	return nil
}

// copyWasmExec places the toolchain's wasm_exec.js next to main.wasm.
func copyWasmExec(ctx context.Context, dir string) error {
	out, err := exec.CommandContext(ctx, "go", "env", "GOROOT").Output()
	if err != nil {
		return fmt.Errorf("go env GOROOT: %w", err)
	}
	goroot := strings.TrimSpace(string(out))

	var src *os.File
	for _, rel := range []string{"lib/wasm/wasm_exec.js", "misc/wasm/wasm_exec.js"} {
		if src, err = os.Open(filepath.Join(goroot, rel)); err == nil {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("locate wasm_exec.js: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, "wasm_exec.js"))
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return err
	}
	return dst.Close()
}
