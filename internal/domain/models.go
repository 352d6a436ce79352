package domain

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"envinstall/internal/osinfo"
)

// Category groups descriptors for bulk selection and display sections
type Category string

const (
	CategoryBase Category = "base"
	CategoryVibe Category = "vibe"
)

// Categories lists the known categories in display order
var Categories = []Category{CategoryBase, CategoryVibe}

// Title returns the section heading for a category
func (c Category) Title() string {
	switch c {
	case CategoryBase:
		return "Base Tools"
	case CategoryVibe:
		return "Vibe Coding"
	default:
		return string(c)
	}
}

// Valid reports whether c is a known category
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Kind tags an install strategy
type Kind string

const (
	KindPackageManager Kind = "package-manager"
	KindRemoteScript   Kind = "remote-script"
	KindGlobalTool     Kind = "global-tool"
	KindDirect         Kind = "direct"
)

// Descriptor is the static definition of one installable package
type Descriptor struct {
	Name     string   `toml:"name"`
	Check    string   `toml:"check,omitempty"` // empty = no reliable presence check
	Category Category `toml:"category"`
	Hint     string   `toml:"hint,omitempty"` // printed after a successful install
	Install  Strategy `toml:"install"`
}

// HasCheck reports whether the descriptor carries a presence-check command
func (d Descriptor) HasCheck() bool {
	return d.Check != ""
}

// Validate checks the descriptor and its strategy for every family
func (d Descriptor) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.New("package name is empty")
	}
	if !d.Category.Valid() {
		return fmt.Errorf("package %q: unknown category %q", d.Name, d.Category)
	}
	for _, family := range osinfo.Families {
		if err := d.Install.For(family).validate(); err != nil {
			return fmt.Errorf("package %q (%s): %w", d.Name, family, err)
		}
	}
	return nil
}

// Strategy describes how to materialize a package. Kind selects which of the
// remaining fields apply. MacOS and Linux replace the whole strategy for that
// family when set.
type Strategy struct {
	Kind Kind `toml:"kind"`

	// package-manager
	Package string `toml:"package,omitempty"`
	Cask    bool   `toml:"cask,omitempty"`

	// remote-script
	URL      string `toml:"url,omitempty"` // may contain {arch}
	Shell    string `toml:"shell,omitempty"`
	Args     string `toml:"args,omitempty"`
	Download bool   `toml:"download,omitempty"`

	// global-tool
	Spec string `toml:"spec,omitempty"`

	// direct
	Commands []string `toml:"commands,omitempty"`

	MacOS *Strategy `toml:"macos,omitempty"`
	Linux *Strategy `toml:"linux,omitempty"`
}

// For returns the strategy that applies to family
func (s Strategy) For(family osinfo.Family) Strategy {
	switch family {
	case osinfo.MacOS:
		if s.MacOS != nil {
			return *s.MacOS
		}
	case osinfo.Linux:
		if s.Linux != nil {
			return *s.Linux
		}
	}
	return s
}

func (s Strategy) validate() error {
	switch s.Kind {
	case KindPackageManager:
		if s.Package == "" {
			return errors.New("package-manager strategy needs a package")
		}
	case KindRemoteScript:
		if s.URL == "" {
			return errors.New("remote-script strategy needs a url")
		}
		switch s.Shell {
		case "", "bash", "sh":
		default:
			return fmt.Errorf("remote-script shell %q is not bash or sh", s.Shell)
		}
	case KindGlobalTool:
		if s.Spec == "" {
			return errors.New("global-tool strategy needs a spec")
		}
	case KindDirect:
		if len(s.Commands) == 0 {
			return errors.New("direct strategy needs at least one command")
		}
		for _, c := range s.Commands {
			if strings.TrimSpace(c) == "" {
				return errors.New("direct strategy has an empty command")
			}
		}
	case "":
		return errors.New("strategy kind is empty")
	default:
		return fmt.Errorf("unknown strategy kind %q", s.Kind)
	}
	return nil
}

// Plan turns the strategy into the shell command lines to run on host, in order
func (s Strategy) Plan(host osinfo.Host) ([]string, error) {
	st := s.For(host.Family)
	if err := st.validate(); err != nil {
		return nil, err
	}

	switch st.Kind {
	case KindPackageManager:
		if host.Family == osinfo.MacOS {
			if st.Cask {
				return []string{"brew install --cask " + st.Package}, nil
			}
			return []string{"brew install " + st.Package}, nil
		}
		return []string{"sudo apt-get update && sudo apt-get install -y " + st.Package}, nil

	case KindRemoteScript:
		url := strings.ReplaceAll(st.URL, "{arch}", host.Arch)
		shell := st.Shell
		if shell == "" {
			shell = "bash"
		}
		if st.Download {
			tmp := "/tmp/" + path.Base(url)
			run := shell + " " + tmp
			if st.Args != "" {
				run += " " + st.Args
			}
			return []string{fmt.Sprintf("curl -fsSL %s -o %s && %s && rm %s", url, tmp, run, tmp)}, nil
		}
		if st.Args != "" {
			return []string{fmt.Sprintf("curl -fsSL %s | %s -s -- %s", url, shell, st.Args)}, nil
		}
		return []string{fmt.Sprintf("curl -fsSL %s | %s", url, shell)}, nil

	case KindGlobalTool:
		return []string{"npm install -g " + st.Spec}, nil

	case KindDirect:
		out := make([]string, len(st.Commands))
		copy(out, st.Commands)
		return out, nil
	}

	return nil, fmt.Errorf("unknown strategy kind %q", st.Kind)
}
