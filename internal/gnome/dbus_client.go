package gnome

import (
	"fmt"

	"github.com/godbus/dbus/v5"
)

const (
	displayConfigName = "org.gnome.Mutter.DisplayConfig"
	displayConfigPath = "/org/gnome/Mutter/DisplayConfig"
	getCurrentState   = "org.gnome.Mutter.DisplayConfig.GetCurrentState"
)

// MonitorSpec identifies a physical monitor on the bus:
// connector, vendor, product, serial.
type MonitorSpec struct {
	Connector string
	Vendor    string
	Product   string
	Serial    string
}

// MonitorMode mirrors one mode entry of GetCurrentState. The "is-current"
// and "is-preferred" flags arrive in Properties.
type MonitorMode struct {
	ID              string
	Width           int32
	Height          int32
	Refresh         float64
	PreferredScale  float64
	SupportedScales []float64
	Properties      map[string]dbus.Variant
}

// MonitorState is one physical monitor as reported by GetCurrentState.
type MonitorState struct {
	Spec       MonitorSpec
	Modes      []MonitorMode
	Properties map[string]dbus.Variant
}

// LogicalMonitorState is one logical monitor (a placed region of the
// compositor's coordinate space) and the physical monitors assigned to it.
type LogicalMonitorState struct {
	X          int32
	Y          int32
	Scale      float64
	Transform  uint32
	Primary    bool
	Monitors   []MonitorSpec
	Properties map[string]dbus.Variant
}

// DBusClient defines the interface for the DisplayConfig D-Bus calls.
// This abstraction allows us to mock D-Bus interactions in tests.
//
//go:generate mockgen -source=dbus_client.go -destination=dbus_client_mock.go -package=gnome
type DBusClient interface {
	// CurrentState calls GetCurrentState and decodes the reply into the
	// state types above
	CurrentState() (uint32, []MonitorState, []LogicalMonitorState, error)

	// Close closes the D-Bus connection
	Close() error
}

// StdDBusClient is the real implementation using godbus
type StdDBusClient struct {
	conn *dbus.Conn
}

// NewStdDBusClient creates a real D-Bus client connected to the session bus
func NewStdDBusClient() (*StdDBusClient, error) {
	conn, err := dbus.SessionBus()
	if err != nil {
		return nil, err
	}
	return &StdDBusClient{conn: conn}, nil
}

// Close closes the D-Bus connection
func (c *StdDBusClient) Close() error {
	return c.conn.Close()
}

// CurrentState fetches the compositor's current display state
func (c *StdDBusClient) CurrentState() (uint32, []MonitorState, []LogicalMonitorState, error) {
	obj := c.conn.Object(displayConfigName, dbus.ObjectPath(displayConfigPath))

	var (
		serial   uint32
		monitors []MonitorState
		logical  []LogicalMonitorState
		props    map[string]dbus.Variant
	)
	err := obj.Call(getCurrentState, 0).Store(&serial, &monitors, &logical, &props)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("GetCurrentState call failed: %w", err)
	}
	return serial, monitors, logical, nil
}
