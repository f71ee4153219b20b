// Package profilers sets up profiling for the binaries: searches are CPU bound, and these
// are the tools to see where the time goes.
//
// If linked, it will install the profiler flags -prof, -cpu_profile and -mem_profile.
package profilers

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

var (
	flagProfiler   = flag.Int("prof", -1, "If set, serves the HTTP profiler (/debug/pprof) at the given localhost port.")
	flagCPUProfile = flag.String("cpu_profile", "", "Write a CPU profile to `file`.")
	flagMemProfile = flag.String("mem_profile", "", "Write a heap profile to `file` on exit.")
)

// Setup starts the profilers configured by the flags. The returned stop function must be
// called before the program exits, typically deferred: it writes the profiles and, if the HTTP
// profiler is on, keeps the program alive until ctx is done so the profiles can be inspected.
func Setup(ctx context.Context) (stop func(), err error) {
	var cpuFile *os.File
	if *flagCPUProfile != "" {
		cpuFile, err = os.Create(*flagCPUProfile)
		if err != nil {
			return nil, errors.Wrap(err, "failed to create CPU profile")
		}
		if err = pprof.StartCPUProfile(cpuFile); err != nil {
			_ = cpuFile.Close()
			return nil, errors.Wrap(err, "failed to start CPU profile")
		}
	}
	var addr string
	if *flagProfiler >= 0 {
		addr = fmt.Sprintf("localhost:%d", *flagProfiler)
		klog.Infof("Serving profiler on http://%s/debug/pprof", addr)
		go func() {
			klog.Errorf("Profiler server stopped: %v", http.ListenAndServe(addr, nil))
		}()
	}

	stop = func() {
		if cpuFile != nil {
			pprof.StopCPUProfile()
			if err := cpuFile.Close(); err != nil {
				klog.Errorf("Failed to write CPU profile: %v", err)
			}
		}
		if *flagMemProfile != "" {
			if err := writeHeapProfile(*flagMemProfile); err != nil {
				klog.Errorf("%v", err)
			}
		}
		if addr != "" && ctx.Err() == nil {
			runtime.GC()
			fmt.Printf("- Program finished: kept alive with profiler opened at http://%s/debug/pprof\n", addr)
			fmt.Printf("- Interrupt (Ctrl+C) to exit\n")
			<-ctx.Done()
		}
	}
	return stop, nil
}

func writeHeapProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "failed to create heap profile")
	}
	runtime.GC()
	if err = pprof.WriteHeapProfile(f); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "failed to write heap profile")
	}
	return errors.Wrap(f.Close(), "failed to close heap profile")
}
