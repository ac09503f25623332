//go:build linux

package meminfo

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

func snapshot() Usage {
	var usage Usage

	var self unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_SELF, &self); err == nil {
		usage.PeakRSSKB = uint64(self.Maxrss)
	}

	var children unix.Rusage
	if err := unix.Getrusage(unix.RUSAGE_CHILDREN, &children); err == nil {
		usage.ChildPeakRSSKB = uint64(children.Maxrss)
	}

	usage.CurrentRSSKB = currentRSS()

	return usage
}

// currentRSS reads VmRSS from /proc/self/status. Getrusage only exposes
// the high-water mark, not the current resident set.
func currentRSS() uint64 {
	f, err := os.Open("/proc/self/status")
	if err != nil {
		return 0
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "VmRSS:") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0
		}

		kb, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			return 0
		}

		return kb
	}

	return 0
}
