package collector

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"

	"github.com/drowe/disktemps/internal/statsd"
)

// Recognized status file keys. The two schema generations differ in which
// of these they carry; everything is optional except name and temp.
const (
	keyName       = "name"
	keyID         = "id"
	keyTemp       = "temp"
	keyType       = "type"
	keyDevice     = "device"
	keyTransport  = "transport"
	keyRotational = "rotational"
)

// RawRecord accumulates the key/value lines of a single section. Each
// section starts from a fresh RawRecord; nothing carries over.
type RawRecord map[string]string

// set stores a recognized key, silently dropping anything else so newer
// platform releases can add fields without breaking the collector.
func (r RawRecord) set(key, value string) {
	switch key {
	case keyName, keyID, keyTemp, keyType, keyDevice, keyTransport, keyRotational:
		r[key] = value
	}
}

// Rotational is the tri-state rotational-media flag reported by the
// platform.
type Rotational int

const (
	RotationalUnknown Rotational = iota
	RotationalSpinning
	RotationalSolidState
)

func parseRotational(s string) Rotational {
	switch s {
	case "1":
		return RotationalSpinning
	case "0":
		return RotationalSolidState
	default:
		return RotationalUnknown
	}
}

// DriveKind returns the derived drive classification, or "" when the
// rotational state was not reported.
func (r Rotational) DriveKind() string {
	switch r {
	case RotationalSpinning:
		return "hdd"
	case RotationalSolidState:
		return "ssd"
	default:
		return ""
	}
}

func (r Rotational) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(r.DriveKind())), nil
}

// DeviceRecord is one validated array device. Construction goes through
// Validate; a DeviceRecord always has a name and a numeric temperature.
type DeviceRecord struct {
	Name       string     `json:"name"`
	ID         string     `json:"id,omitempty"`
	Temp       int        `json:"temp"`
	Type       string     `json:"type,omitempty"`
	Device     string     `json:"device,omitempty"`
	Transport  string     `json:"transport,omitempty"`
	Rotational Rotational `json:"drive_kind,omitempty"`
}

// Validation failures. These discard a single section; the pass continues.
var (
	ErrMissingName = errors.New("section has no disk name")
	ErrMissingTemp = errors.New("no temperature reported")
	ErrBadTemp     = errors.New("temperature not numeric")
)

var tempPattern = regexp.MustCompile(`^[0-9]+$`)

// Validate builds a DeviceRecord from a finished section, or reports why
// the section must be discarded. Devices that do not report a temperature
// (boot/flash media) use "*" as a sentinel and fail the numeric check.
func Validate(raw RawRecord) (*DeviceRecord, error) {
	name := raw[keyName]
	if name == "" {
		return nil, ErrMissingName
	}

	temp := raw[keyTemp]
	if temp == "" {
		return nil, ErrMissingTemp
	}
	if !tempPattern.MatchString(temp) {
		return nil, fmt.Errorf("%w: %q", ErrBadTemp, temp)
	}
	n, err := strconv.Atoi(temp)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadTemp, temp)
	}

	return &DeviceRecord{
		Name:       name,
		ID:         raw[keyID],
		Temp:       n,
		Type:       raw[keyType],
		Device:     raw[keyDevice],
		Transport:  raw[keyTransport],
		Rotational: parseRotational(raw[keyRotational]),
	}, nil
}

// Tags returns the fixed-order dogstatsd tag set for the device. The five
// base tags are always present, empty value or not; drive_kind is appended
// only when the rotational flag was reported.
func (d *DeviceRecord) Tags() []string {
	tags := []string{
		"disk_name:" + statsd.SanitizeTagValue(d.Name),
		"disk_id:" + statsd.SanitizeTagValue(d.ID),
		"disk_type:" + statsd.SanitizeTagValue(d.Type),
		"device:" + statsd.SanitizeTagValue(d.Device),
		"transport:" + statsd.SanitizeTagValue(d.Transport),
	}
	if kind := d.Rotational.DriveKind(); kind != "" {
		tags = append(tags, "drive_kind:"+kind)
	}
	return tags
}
