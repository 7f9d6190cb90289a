package gpu

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/jaypipes/ghw"
)

const nvidiaPCIVendorID = "10de"

// DefaultProbes returns the standard three-step cascade: a direct PCI
// capability query, the NVIDIA management utility, and a search for
// the CUDA runtime shared library.
func DefaultProbes() []Probe {
	return []Probe{
		{Name: "pci", Run: probeGraphicsCards},
		{Name: "nvidia-smi", Run: probeManagementUtility},
		{Name: "cudart", Run: func() (Availability, error) {
			return probeRuntimeLibrary(librarySearchDirs())
		}},
	}
}

// probeGraphicsCards asks ghw for the PCI graphics inventory. A failed
// or empty query is inconclusive; an inventory without an NVIDIA card
// affirms unavailability.
func probeGraphicsCards() (Availability, error) {
	info, err := ghw.GPU()
	if err != nil {
		return Inconclusive, nil
	}
	if len(info.GraphicsCards) == 0 {
		return Inconclusive, nil
	}
	for _, card := range info.GraphicsCards {
		if card == nil || card.DeviceInfo == nil || card.DeviceInfo.Vendor == nil {
			continue
		}
		vendor := card.DeviceInfo.Vendor
		if vendor.ID == nvidiaPCIVendorID || strings.Contains(strings.ToLower(vendor.Name), "nvidia") {
			return Available, nil
		}
	}
	return Unavailable, nil
}

// probeManagementUtility invokes nvidia-smi and checks whether it
// lists at least one device. A missing or failing binary is
// inconclusive: the runtime-library probe still gets a chance to
// produce a diagnostic.
func probeManagementUtility() (Availability, error) {
	path, err := exec.LookPath("nvidia-smi")
	if err != nil {
		return Inconclusive, nil
	}
	output, err := exec.Command(path, "--query-gpu=name", "--format=csv,noheader").Output()
	if err != nil {
		return Inconclusive, nil
	}
	for _, line := range strings.Split(string(output), "\n") {
		if strings.TrimSpace(line) != "" {
			return Available, nil
		}
	}
	return Unavailable, nil
}

// probeRuntimeLibrary searches dirs for the CUDA runtime library. No
// runtime at all is inconclusive (plain CPU host). A runtime without
// the accompanying driver library is the broken-install case and
// returns a fatal diagnostic.
func probeRuntimeLibrary(dirs []string) (Availability, error) {
	runtimePath := locateLibrary("libcudart.so", dirs)
	if runtimePath == "" {
		return Inconclusive, nil
	}
	if driverPath := locateLibrary("libcuda.so", dirs); driverPath == "" {
		return Unavailable, fmt.Errorf(
			"CUDA runtime present at %s but the NVIDIA driver library libcuda.so was not found; the driver is missing or incompatible", runtimePath)
	}
	return Available, nil
}

// locateLibrary returns the first file in dirs whose name matches the
// library stem exactly or with a version suffix (libcudart.so.12).
func locateLibrary(stem string, dirs []string) string {
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			name := entry.Name()
			if name == stem || strings.HasPrefix(name, stem+".") {
				return filepath.Join(dir, name)
			}
		}
	}
	return ""
}

func librarySearchDirs() []string {
	dirs := filepath.SplitList(os.Getenv("LD_LIBRARY_PATH"))
	dirs = append(dirs,
		"/usr/lib",
		"/usr/lib64",
		"/usr/lib/x86_64-linux-gnu",
		"/usr/local/cuda/lib64",
	)
	out := dirs[:0]
	for _, dir := range dirs {
		if strings.TrimSpace(dir) != "" {
			out = append(out, dir)
		}
	}
	return out
}
