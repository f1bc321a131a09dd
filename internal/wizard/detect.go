package wizard

import (
	"os"
	"os/exec"
)

// DetectionResult holds what was auto-detected on the system.
type DetectionResult struct {
	DockerMachineAvailable bool
	ExistingConfig         string // path if found, empty otherwise
}

// Detector abstracts filesystem and path lookups for testing.
type Detector interface {
	LookPath(name string) (string, error)
	Stat(path string) (os.FileInfo, error)
}

// OSDetector uses the real OS for detection.
type OSDetector struct{}

func (OSDetector) LookPath(name string) (string, error) { return exec.LookPath(name) }
func (OSDetector) Stat(path string) (os.FileInfo, error) { return os.Stat(path) }

// Detect scans the environment before running the wizard.
func Detect(d Detector) DetectionResult {
	if d == nil {
		d = OSDetector{}
	}

	result := DetectionResult{}

	if _, err := d.LookPath("docker-machine"); err == nil {
		result.DockerMachineAvailable = true
	}

	for _, p := range []string{"docker_machine.yml", "docker_machine.yaml"} {
		if _, err := d.Stat(p); err == nil {
			result.ExistingConfig = p
			break
		}
	}

	return result
}
