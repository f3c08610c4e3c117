//go:build unix

package graphfile

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/sys/unix"
)

// LockPolicy controls how aggressively Open pins the mapped pages into
// physical memory, trading startup latency against steady-state page
// fault avoidance.
type LockPolicy int

const (
	// LockNone leaves the mapping demand-paged; pages fault in on first
	// touch.
	LockNone LockPolicy = iota

	// LockForeground pins every page before Open returns. Open fails if
	// the OS refuses (e.g. RLIMIT_MEMLOCK too small).
	LockForeground

	// LockBackground spawns a detached goroutine that pins pages after
	// Open has already returned. Failure is logged and otherwise
	// ignored; the goroutine never touches Graph state besides the
	// mapping it was handed.
	LockBackground

	// LockPopulate asks the kernel to pre-fault the mapping at mmap time
	// via MAP_POPULATE, without pinning it against later eviction.
	LockPopulate
)

// Open memory-maps filename read-only and decodes it as a graph file.
// Only the magic number and the derived total size are validated; deeper
// consistency checks are skipped to keep startup latency low, per the
// graph reader's design budget.
//
// If logger is nil, a no-op logger is used; Open never forces logging
// configuration onto the caller.
func Open(filename string, policy LockPolicy, logger *zap.Logger) (*Graph, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("graphfile: open %s: %w", filename, err)
	}

	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("graphfile: stat %s: %w", filename, err)
	}
	size := st.Size()
	if size == 0 {
		f.Close()
		return nil, fmt.Errorf("graphfile: %s: %w", filename, ErrTooSmall)
	}

	mmapFlags := unix.MAP_SHARED
	if policy == LockPopulate {
		mmapFlags |= unix.MAP_POPULATE
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, mmapFlags)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("graphfile: mmap %s: %w", filename, err)
	}

	g, err := decode(data, func() error {
		unix.Munmap(data)
		return f.Close()
	})
	if err != nil {
		unix.Munmap(data)
		f.Close()
		return nil, err
	}

	switch policy {
	case LockForeground:
		if err := unix.Mlock(data); err != nil {
			g.Close()
			return nil, fmt.Errorf("graphfile: mlock %s: %w", filename, err)
		}
	case LockBackground:
		go func() {
			if err := unix.Mlock(data); err != nil {
				logger.Warn("graphfile: background mlock failed",
					zap.String("file", filename), zap.Error(err))
			}
		}()
	}

	return g, nil
}
