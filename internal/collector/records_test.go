package collector

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		raw     RawRecord
		wantErr error
	}{
		{
			name: "valid full record",
			raw: RawRecord{
				keyName: "disk1", keyID: "WD-1", keyTemp: "38",
				keyType: "Data", keyDevice: "sdc", keyTransport: "ata",
				keyRotational: "1",
			},
		},
		{
			name: "valid minimal record",
			raw:  RawRecord{keyName: "disk2", keyTemp: "40"},
		},
		{
			name:    "missing name",
			raw:     RawRecord{keyTemp: "38"},
			wantErr: ErrMissingName,
		},
		{
			name:    "missing temperature",
			raw:     RawRecord{keyName: "disk1"},
			wantErr: ErrMissingTemp,
		},
		{
			name:    "sentinel temperature",
			raw:     RawRecord{keyName: "flash", keyTemp: "*"},
			wantErr: ErrBadTemp,
		},
		{
			name:    "non-numeric temperature",
			raw:     RawRecord{keyName: "disk1", keyTemp: "38C"},
			wantErr: ErrBadTemp,
		},
		{
			name:    "negative temperature",
			raw:     RawRecord{keyName: "disk1", keyTemp: "-5"},
			wantErr: ErrBadTemp,
		},
		{
			name:    "empty record",
			raw:     RawRecord{},
			wantErr: ErrMissingName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev, err := Validate(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, dev)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, dev)
			assert.Equal(t, tt.raw[keyName], dev.Name)
		})
	}
}

func TestValidateCopiesFields(t *testing.T) {
	dev, err := Validate(RawRecord{
		keyName: "cache", keyID: "Samsung_SSD_970", keyTemp: "33",
		keyType: "Cache", keyDevice: "nvme0n1", keyTransport: "nvme",
		keyRotational: "0",
	})
	require.NoError(t, err)

	assert.Equal(t, "cache", dev.Name)
	assert.Equal(t, "Samsung_SSD_970", dev.ID)
	assert.Equal(t, 33, dev.Temp)
	assert.Equal(t, "Cache", dev.Type)
	assert.Equal(t, "nvme0n1", dev.Device)
	assert.Equal(t, "nvme", dev.Transport)
	assert.Equal(t, RotationalSolidState, dev.Rotational)
}

func TestParseRotational(t *testing.T) {
	assert.Equal(t, RotationalSpinning, parseRotational("1"))
	assert.Equal(t, RotationalSolidState, parseRotational("0"))
	assert.Equal(t, RotationalUnknown, parseRotational(""))
	assert.Equal(t, RotationalUnknown, parseRotational("yes"))
	assert.Equal(t, RotationalUnknown, parseRotational("2"))
}

func TestTagsFixedOrder(t *testing.T) {
	dev := &DeviceRecord{
		Name: "disk1", ID: "WD-1", Temp: 38, Type: "Data",
		Device: "sdc", Transport: "ata", Rotational: RotationalSpinning,
	}

	assert.Equal(t, []string{
		"disk_name:disk1",
		"disk_id:wd-1",
		"disk_type:data",
		"device:sdc",
		"transport:ata",
		"drive_kind:hdd",
	}, dev.Tags())
}

func TestTagsEmptyValuesStillPresent(t *testing.T) {
	dev := &DeviceRecord{Name: "disk1", Temp: 38}

	assert.Equal(t, []string{
		"disk_name:disk1",
		"disk_id:",
		"disk_type:",
		"device:",
		"transport:",
	}, dev.Tags())
}

func TestTagsDriveKind(t *testing.T) {
	ssd := &DeviceRecord{Name: "cache", Temp: 33, Rotational: RotationalSolidState}
	assert.Contains(t, ssd.Tags(), "drive_kind:ssd")

	unknown := &DeviceRecord{Name: "disk1", Temp: 38}
	for _, tag := range unknown.Tags() {
		assert.NotContains(t, tag, "drive_kind")
	}
}

func TestTagsSanitized(t *testing.T) {
	dev := &DeviceRecord{
		Name: "Disk 1", ID: "WD:red,8TB", Temp: 38, Type: "Data|Array",
	}

	for _, tag := range dev.Tags() {
		_, value, found := strings.Cut(tag, ":")
		require.True(t, found, "tag %q has no separator", tag)
		assert.NotContains(t, value, ",")
		assert.NotContains(t, value, ":")
		assert.NotContains(t, value, "|")
		assert.NotContains(t, value, " ")
		assert.Equal(t, strings.ToLower(value), value)
	}

	assert.Equal(t, "disk_name:disk_1", dev.Tags()[0])
	assert.Equal(t, "disk_id:wd_red_8tb", dev.Tags()[1])
	assert.Equal(t, "disk_type:data_array", dev.Tags()[2])
}

func TestDeviceRecordJSON(t *testing.T) {
	dev := &DeviceRecord{
		Name: "parity", ID: "WDC_WD80", Temp: 38, Type: "Parity",
		Device: "sdb", Transport: "ata", Rotational: RotationalSpinning,
	}
	data, err := json.Marshal(dev)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "parity",
		"id": "WDC_WD80",
		"temp": 38,
		"type": "Parity",
		"device": "sdb",
		"transport": "ata",
		"drive_kind": "hdd"
	}`, string(data))

	// Unknown rotational state omits drive_kind entirely
	data, err = json.Marshal(&DeviceRecord{Name: "disk1", Temp: 40})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name": "disk1", "temp": 40}`, string(data))
}
