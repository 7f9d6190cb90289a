package gpu

// Accelerator is the hardware execution path for model inference.
// The values match the device strings the Whisper tooling accepts.
type Accelerator string

const (
	AcceleratorCUDA Accelerator = "cuda"
	AcceleratorCPU  Accelerator = "cpu"
)

// Availability is the tri-state outcome of a single probe.
type Availability int

const (
	// Inconclusive means the probe could not tell either way
	// (tooling absent, query unsupported). The cascade moves on.
	Inconclusive Availability = iota
	// Available affirms a usable GPU.
	Available
	// Unavailable affirms there is no usable GPU.
	Unavailable
)

// Probe is one detection strategy. Run returns Inconclusive to pass
// control to the next probe. A non-nil error is fatal: the device is
// present but unusable and the caller must abort rather than fall
// back to CPU.
type Probe struct {
	Name string
	Run  func() (Availability, error)
}

// Decision is the outcome of the probe cascade, computed once per run.
type Decision struct {
	Accelerator Accelerator
	// Probe names the strategy that settled the decision; empty when
	// every probe was inconclusive and CPU was chosen by default.
	Probe string
	// Err carries the fatal diagnostic from a broken GPU runtime.
	// When set, Accelerator is CPU but the caller must not proceed.
	Err error
}

// Fatal reports whether the decision must abort the run.
func (d Decision) Fatal() bool {
	return d.Err != nil
}

// Detect runs probes in order and short-circuits on the first
// conclusive result. With no arguments it uses DefaultProbes.
func Detect(probes ...Probe) Decision {
	if len(probes) == 0 {
		probes = DefaultProbes()
	}
	for _, probe := range probes {
		availability, err := probe.Run()
		if err != nil {
			return Decision{Accelerator: AcceleratorCPU, Probe: probe.Name, Err: err}
		}
		switch availability {
		case Available:
			return Decision{Accelerator: AcceleratorCUDA, Probe: probe.Name}
		case Unavailable:
			return Decision{Accelerator: AcceleratorCPU, Probe: probe.Name}
		}
	}
	return Decision{Accelerator: AcceleratorCPU}
}
