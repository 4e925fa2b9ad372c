// Command shm-probe prints platform layout facts for shared-memory IPC
// development: sizes of the POSIX synchronization primitive types and the
// values of their special constants, plus optional memory and host
// sections. With -listen it serves the facts as Prometheus metrics instead.
//
// A bare invocation reproduces the classic C diagnostic:
//
//	$ shm-probe
//	typename: size_in_bytes
//	sem_t: 32
//	pthread_mutexattr_t: 4
//	pthread_rwlockattr_t: 8
//	pthread_rwlock_t: 56
//	MACRO or other special name: value
//	SEM_FAILED: 0x0
//	PTHREAD_PROCESS_SHARED: 1
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/srediag/shm-probe/adapter"
	"github.com/srediag/shm-probe/pkg/export"
	"github.com/srediag/shm-probe/pkg/probe"
	"github.com/srediag/shm-probe/pkg/render"
)

const version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("shm-probe", flag.ExitOnError)
	sections := fs.String("sections", probe.SectionSync, "comma-separated sections to probe (sync, memory, host) or \"all\"")
	format := fs.String("format", probe.FormatText, "output format: text or json")
	listen := fs.String("listen", "", "serve facts as Prometheus metrics on this address instead of printing once")
	pool := fs.Int("pool", 2, "max concurrently running section probes")
	timeout := fs.Duration("timeout", 3*time.Second, "per-section probe timeout")
	showVersion := fs.Bool("version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *showVersion {
		fmt.Println("shm-probe " + version)
		return 0
	}

	registry := probe.DefaultRegistry()
	config := &probe.Config{
		Sections:   expandSections(*sections, registry),
		Format:     *format,
		ListenAddr: *listen,
		PoolSize:   *pool,
		Timeout:    *timeout,
	}
	if err := probe.VerifyConfig(config); err != nil {
		fmt.Fprintf(os.Stderr, "shm-probe: %v\n", err)
		return 1
	}

	collector, err := probe.NewCollector(registry, config, adapter.Noop())
	if err != nil {
		fmt.Fprintf(os.Stderr, "shm-probe: %v\n", err)
		return 1
	}
	defer collector.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if config.ListenAddr != "" {
		srv := export.NewServer(config.ListenAddr, func(ctx context.Context) (*probe.Report, error) {
			return collector.Collect(ctx, config.Sections)
		})
		if err := srv.Run(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "shm-probe: %v\n", err)
			return 1
		}
		return 0
	}

	report, err := collector.Collect(ctx, config.Sections)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shm-probe: %v\n", err)
		return 1
	}
	out, err := render.Render(config.Format, report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "shm-probe: %v\n", err)
		return 1
	}
	if _, err := os.Stdout.Write(out); err != nil {
		fmt.Fprintf(os.Stderr, "shm-probe: write: %v\n", err)
		return 1
	}
	if report.Failed() {
		return 1
	}
	return 0
}

func expandSections(arg string, registry *probe.Registry) []string {
	if arg == "all" {
		return registry.Names()
	}
	var out []string
	for _, name := range strings.Split(arg, ",") {
		name = strings.TrimSpace(name)
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}
