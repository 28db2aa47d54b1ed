// Package config loads the optional bench profile: canned defaults
// applied to the stand-ins before a bench run.
package config

import (
	"fmt"
	"os"

	"firmbench-go/errcode"
	"firmbench-go/stubs/httpc"
	"firmbench-go/stubs/spiffs"

	"gopkg.in/yaml.v3"
)

// Default values for Profile.
const (
	DefaultBaud         = 115200
	DefaultResponseCode = httpc.StatusOK
)

// ConsoleProfile configures the serial console stand-in.
type ConsoleProfile struct {
	Baud int `yaml:"baud"`
}

// HTTPProfile configures the HTTP client stand-in.
type HTTPProfile struct {
	ResponseCode int    `yaml:"response_code"`
	ResponseBody string `yaml:"response_body"`
}

// FSProfile configures the filesystem stand-in.
type FSProfile struct {
	AvailableCount int    `yaml:"available_count"`
	DataByte       string `yaml:"data_byte"` // single character
}

// Profile represents a bench profile YAML file.
type Profile struct {
	Console ConsoleProfile `yaml:"console"`
	HTTP    HTTPProfile    `yaml:"http"`
	FS      FSProfile      `yaml:"fs"`
}

// ValidationError reports an invalid profile field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid profile: %s: %s", e.Field, e.Message)
}

// DefaultProfile returns a profile with sensible default values.
func DefaultProfile() Profile {
	return Profile{
		Console: ConsoleProfile{Baud: DefaultBaud},
		HTTP:    HTTPProfile{ResponseCode: DefaultResponseCode},
		FS: FSProfile{
			AvailableCount: spiffs.DefaultAvailableCount,
			DataByte:       string(rune(spiffs.DefaultDataByte)),
		},
	}
}

// Load reads and parses a bench profile from path. A missing file
// returns the default profile. Fields absent from the file keep
// their defaults.
func Load(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			p := DefaultProfile()
			return &p, nil
		}
		return nil, &errcode.E{C: errcode.InvalidProfile, Op: "read", Msg: path, Err: err}
	}

	p := DefaultProfile()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, &errcode.E{C: errcode.InvalidProfile, Op: "parse", Msg: err.Error(), Err: err}
	}

	if err := Validate(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks that all profile values are usable.
func Validate(p *Profile) error {
	if p.Console.Baud <= 0 {
		return ValidationError{Field: "console.baud", Message: "must be positive"}
	}
	if p.HTTP.ResponseCode < 100 || p.HTTP.ResponseCode > 599 {
		return ValidationError{Field: "http.response_code", Message: "must be a 3-digit status code"}
	}
	if p.FS.AvailableCount < 0 {
		return ValidationError{Field: "fs.available_count", Message: "must not be negative"}
	}
	if len(p.FS.DataByte) != 1 {
		return ValidationError{Field: "fs.data_byte", Message: "must be a single character"}
	}
	return nil
}
