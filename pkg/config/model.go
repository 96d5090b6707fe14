package config

import "gopkg.in/yaml.v3"

// IPv4Address is one configured interface address.
type IPv4Address struct {
	Address   string `yaml:"address"`
	Mask      string `yaml:"mask"`
	Secondary bool   `yaml:"secondary,omitempty"`
}

// CDPConfig is the CDP state of an interface.
type CDPConfig struct {
	Enabled bool `yaml:"enabled"`
}

// LLDPConfig is the LLDP state of an interface, per direction. Nil means
// neither the config nor a platform default determined the direction.
type LLDPConfig struct {
	Transmit *bool `yaml:"transmit,omitempty"`
	Receive  *bool `yaml:"receive,omitempty"`
}

// OSPFTimers maps a timer name (hello, dead, retransmit) to its interval.
type OSPFTimers map[string]int

// OSPFKey is an authentication key with its encryption type.
type OSPFKey struct {
	EncryptionType int    `yaml:"encryption_type"`
	Value          string `yaml:"value"`
}

// OSPFAuthentication is the interface OSPF authentication config.
type OSPFAuthentication struct {
	Method   string   `yaml:"method,omitempty"`
	Keychain string   `yaml:"keychain,omitempty"`
	Key      *OSPFKey `yaml:"key,omitempty"`
}

// OSPFConfig is the per-interface OSPF configuration.
type OSPFConfig struct {
	ProcessID      *int                `yaml:"process_id,omitempty"`
	Area           *int                `yaml:"area,omitempty"`
	NetworkType    *string             `yaml:"network_type,omitempty"`
	Cost           *int                `yaml:"cost,omitempty"`
	Priority       *int                `yaml:"priority,omitempty"`
	BFD            *string             `yaml:"bfd,omitempty"`
	Timers         OSPFTimers          `yaml:"timers,omitempty"`
	Authentication *OSPFAuthentication `yaml:"authentication,omitempty"`
}

// ISISMetric is one "isis metric" statement.
type ISISMetric struct {
	Metric int    `yaml:"metric"`
	Level  string `yaml:"level"`
}

// ISISConfig is the per-interface IS-IS configuration.
type ISISConfig struct {
	Process     *string      `yaml:"process,omitempty"`
	NetworkType *string      `yaml:"network_type,omitempty"`
	CircuitType *string      `yaml:"circuit_type,omitempty"`
	Metrics     []ISISMetric `yaml:"metrics,omitempty"`
}

// RoutePortModel groups the L3 properties of an interface.
type RoutePortModel struct {
	IPv4  []IPv4Address `yaml:"ipv4,omitempty"`
	VRF   *string       `yaml:"vrf,omitempty"`
	IPMTU *int          `yaml:"ip_mtu,omitempty"`
	OSPF  *OSPFConfig   `yaml:"ospf,omitempty"`
	ISIS  *ISISConfig   `yaml:"isis,omitempty"`
}

// InterfaceModel is the typed rendering of one interface section,
// suitable for YAML output toward automation tooling.
type InterfaceModel struct {
	Name         string      `yaml:"name"`
	Enabled      *bool       `yaml:"enabled,omitempty"`
	Description  *string     `yaml:"description,omitempty"`
	MTU          *int        `yaml:"mtu,omitempty"`
	Bandwidth    *int        `yaml:"bandwidth,omitempty"`
	Delay        *int        `yaml:"delay,omitempty"`
	LoadInterval *int        `yaml:"load_interval,omitempty"`
	CDP          *CDPConfig  `yaml:"cdp,omitempty"`
	LLDP         *LLDPConfig `yaml:"lldp,omitempty"`

	L3 *RoutePortModel `yaml:"l3_port,omitempty"`
}

// YAML renders the model as YAML.
func (m InterfaceModel) YAML() ([]byte, error) {
	return yaml.Marshal(m)
}
