package config

import "regexp"

// Structural patterns for interface sections. These are fixed, known-good
// expressions, so they bypass the query cache.
var (
	ifaceNameRe        = regexp.MustCompile(`^interface (?P<name>.*)$`)
	ifaceDescriptionRe = regexp.MustCompile(`^ description (?P<description>.*)$`)
	ifaceIPv4Re        = regexp.MustCompile(`^ ip address (?P<address>(?:\d{1,3}\.){3}\d{1,3}) (?P<mask>(?:\d{1,3}\.){3}\d{1,3})(?: (?P<secondary>secondary))?`)
	ifaceVRFRe         = regexp.MustCompile(`^(?:\sip)?\svrf forwarding (?P<vrf>\S+)`)
	ifaceShutdownRe    = regexp.MustCompile(`^ (?P<shutdown>shutdown)$`)
	ifaceNoShutdownRe  = regexp.MustCompile(`^ (?P<no_shutdown>no shutdown)$`)

	ifaceCDPRe            = regexp.MustCompile(`^ cdp enable$`)
	ifaceNoCDPRe          = regexp.MustCompile(`^ no cdp enable$`)
	ifaceLLDPTransmitRe   = regexp.MustCompile(`^ lldp transmit$`)
	ifaceNoLLDPTransmitRe = regexp.MustCompile(`^ no lldp transmit$`)
	ifaceLLDPReceiveRe    = regexp.MustCompile(`^ lldp receive$`)
	ifaceNoLLDPReceiveRe  = regexp.MustCompile(`^ no lldp receive$`)

	ifaceMTURe          = regexp.MustCompile(`^ mtu (?P<mtu>\d+)`)
	ifaceIPMTURe        = regexp.MustCompile(`^ ip mtu (?P<ip_mtu>\d+)`)
	ifaceBandwidthRe    = regexp.MustCompile(`^ bandwidth (?P<bandwidth>\d+)`)
	ifaceDelayRe        = regexp.MustCompile(`^ delay (?P<delay>\d+)`)
	ifaceLoadIntervalRe = regexp.MustCompile(`^ load-interval (?P<load_interval>\d+)`)

	ifaceOSPFProcessRe    = regexp.MustCompile(`^ ip ospf (?P<process_id>\d+) area (?P<area>\d+)$`)
	ifaceOSPFNetworkRe    = regexp.MustCompile(`^ ip ospf network (?P<network_type>\S+)`)
	ifaceOSPFPriorityRe   = regexp.MustCompile(`^ ip ospf priority (?P<priority>\d+)`)
	ifaceOSPFCostRe       = regexp.MustCompile(`^ ip ospf cost (?P<cost>\d+)`)
	ifaceOSPFBFDRe        = regexp.MustCompile(`^ ip ospf bfd(?: (?:(?P<disable>disable)|(?P<strict_mode>strict-mode)))?$`)
	ifaceOSPFTimerRe      = regexp.MustCompile(`^ ip ospf (?P<timer>\S+?)-interval (?P<interval>\d+)$`)
	ifaceOSPFAuthMethodRe = regexp.MustCompile(`^ ip ospf authentication (?P<method>\S+)(?: (?P<keychain>\S+))?$`)
	ifaceOSPFAuthKeyRe    = regexp.MustCompile(`^ ip ospf authentication-key(?: (?P<encryption_type>\d))? (?P<value>\S+)$`)

	ifaceISISProcessRe = regexp.MustCompile(`^ ip router isis (?P<name>\S+)$`)
	ifaceISISNetworkRe = regexp.MustCompile(`^ isis network (?P<network_type>\S+)`)
	ifaceISISCircuitRe = regexp.MustCompile(`^ isis circuit-type (?P<circuit_type>\S+)`)
	ifaceISISMetricRe  = regexp.MustCompile(`^ isis metric (?P<metric>\d+) (?P<level>\S+)`)
)

// InterfaceLine is an interface declaration node. It carries the full base
// query surface plus typed accessors over its section. Accessors return
// nil when the section does not configure the property and no platform
// default applies.
type InterfaceLine struct {
	*BaseLine
}

func newInterfaceLine(session *Parser, ordinal int, text string, depth int) *InterfaceLine {
	b := newBaseLine(session, ordinal, text, depth)
	b.kind = KindInterface
	return &InterfaceLine{BaseLine: b}
}

// Name returns the declared interface name.
func (l *InterfaceLine) Name() string {
	if v := l.MatchGroup(ifaceNameRe, "name"); v != nil {
		return *v
	}
	return ""
}

// Description returns the interface description line, if present.
func (l *InterfaceLine) Description() *string {
	return l.session.firstOrNil(l.SearchChildrenGroup(ifaceDescriptionRe, "description"))
}

// IsEnabled reports the admin state: false on "shutdown", true on
// "no shutdown". When the section is silent the platform default is used
// (with a warning, since the config alone does not determine the state);
// without one the result is nil.
func (l *InterfaceLine) IsEnabled() *bool {
	if len(l.SearchChildren(ifaceShutdownRe)) == 1 {
		return boolPtr(false)
	}
	if len(l.SearchChildren(ifaceNoShutdownRe)) > 0 {
		return boolPtr(true)
	}
	if d := l.session.defaults.InterfaceNoShutdown; d != nil {
		l.session.logger.Warn("using platform default value for interface admin state",
			"interface", l.Name())
		return boolPtr(*d)
	}
	l.session.logger.Debug("platform default for interface admin state not set")
	return nil
}

// VRF returns the VRF the interface is bound to, if any.
func (l *InterfaceLine) VRF() *string {
	return l.session.firstOrNil(l.SearchChildrenGroup(ifaceVRFRe, "vrf"))
}

// MTU returns the interface MTU.
func (l *InterfaceLine) MTU() *int {
	return l.session.firstIntOrNil(l.SearchChildrenGroup(ifaceMTURe, "mtu"))
}

// IPMTU returns the IP MTU.
func (l *InterfaceLine) IPMTU() *int {
	return l.session.firstIntOrNil(l.SearchChildrenGroup(ifaceIPMTURe, "ip_mtu"))
}

// Bandwidth returns the configured bandwidth value.
func (l *InterfaceLine) Bandwidth() *int {
	return l.session.firstIntOrNil(l.SearchChildrenGroup(ifaceBandwidthRe, "bandwidth"))
}

// Delay returns the configured delay value.
func (l *InterfaceLine) Delay() *int {
	return l.session.firstIntOrNil(l.SearchChildrenGroup(ifaceDelayRe, "delay"))
}

// LoadInterval returns the load-interval value.
func (l *InterfaceLine) LoadInterval() *int {
	return l.session.firstIntOrNil(l.SearchChildrenGroup(ifaceLoadIntervalRe, "load_interval"))
}

// IPv4Addresses returns every configured IPv4 address in order, primary
// first when the config lists it first.
func (l *InterfaceLine) IPv4Addresses() []IPv4Address {
	var out []IPv4Address
	for _, caps := range l.SearchChildrenGroups(ifaceIPv4Re) {
		out = append(out, IPv4Address{
			Address:   caps.Get("address"),
			Mask:      caps.Get("mask"),
			Secondary: caps["secondary"] != nil,
		})
	}
	return out
}

// CDP reports the CDP state, falling back to the platform default.
func (l *InterfaceLine) CDP() *CDPConfig {
	if len(l.SearchChildren(ifaceCDPRe)) > 0 {
		return &CDPConfig{Enabled: true}
	}
	if len(l.SearchChildren(ifaceNoCDPRe)) > 0 {
		return &CDPConfig{Enabled: false}
	}
	if d := l.session.defaults.InterfaceCDPEnabled; d != nil {
		l.session.logger.Warn("using platform default value for interface CDP",
			"interface", l.Name())
		return &CDPConfig{Enabled: *d}
	}
	l.session.logger.Debug("platform default for CDP not set")
	return nil
}

// LLDP reports the LLDP transmit/receive state, falling back to the
// platform default per direction.
func (l *InterfaceLine) LLDP() *LLDPConfig {
	cfg := &LLDPConfig{}
	switch {
	case len(l.SearchChildren(ifaceLLDPTransmitRe)) > 0:
		cfg.Transmit = boolPtr(true)
	case len(l.SearchChildren(ifaceNoLLDPTransmitRe)) > 0:
		cfg.Transmit = boolPtr(false)
	case l.session.defaults.InterfaceLLDPEnabled != nil:
		l.session.logger.Warn("using platform default value for interface LLDP transmit",
			"interface", l.Name())
		cfg.Transmit = boolPtr(*l.session.defaults.InterfaceLLDPEnabled)
	}
	switch {
	case len(l.SearchChildren(ifaceLLDPReceiveRe)) > 0:
		cfg.Receive = boolPtr(true)
	case len(l.SearchChildren(ifaceNoLLDPReceiveRe)) > 0:
		cfg.Receive = boolPtr(false)
	case l.session.defaults.InterfaceLLDPEnabled != nil:
		l.session.logger.Warn("using platform default value for interface LLDP receive",
			"interface", l.Name())
		cfg.Receive = boolPtr(*l.session.defaults.InterfaceLLDPEnabled)
	}
	if cfg.Transmit == nil && cfg.Receive == nil {
		l.session.logger.Debug("platform default for LLDP not set")
		return nil
	}
	return cfg
}

// OSPF collects the interface OSPF configuration from its section.
func (l *InterfaceLine) OSPF() *OSPFConfig {
	p := l.session
	cfg := &OSPFConfig{}
	set := false

	if caps := firstCaptures(l.SearchChildrenGroups(ifaceOSPFProcessRe)); caps != nil {
		cfg.ProcessID = p.firstIntOrNil(capsValues(caps, "process_id"))
		cfg.Area = p.firstIntOrNil(capsValues(caps, "area"))
		set = true
	}
	if v := p.firstOrNil(l.SearchChildrenGroup(ifaceOSPFNetworkRe, "network_type")); v != nil {
		cfg.NetworkType = v
		set = true
	}
	if v := p.firstIntOrNil(l.SearchChildrenGroup(ifaceOSPFCostRe, "cost")); v != nil {
		cfg.Cost = v
		set = true
	}
	if v := p.firstIntOrNil(l.SearchChildrenGroup(ifaceOSPFPriorityRe, "priority")); v != nil {
		cfg.Priority = v
		set = true
	}
	if caps := firstCaptures(l.SearchChildrenGroups(ifaceOSPFBFDRe)); caps != nil {
		switch {
		case caps["disable"] != nil:
			cfg.BFD = strPtr("disable")
		case caps["strict_mode"] != nil:
			cfg.BFD = strPtr("strict-mode")
		default:
			cfg.BFD = strPtr("enable")
		}
		set = true
	}
	if timers := l.SearchChildrenGroups(ifaceOSPFTimerRe); len(timers) > 0 {
		cfg.Timers = OSPFTimers{}
		for _, t := range timers {
			if n := p.firstIntOrNil(capsValues(t, "interval")); n != nil {
				cfg.Timers[t.Get("timer")] = *n
			}
		}
		set = true
	}
	method := firstCaptures(l.SearchChildrenGroups(ifaceOSPFAuthMethodRe))
	key := firstCaptures(l.SearchChildrenGroups(ifaceOSPFAuthKeyRe))
	if method != nil || key != nil {
		auth := &OSPFAuthentication{}
		if method != nil {
			auth.Method = method.Get("method")
			if method["keychain"] != nil {
				auth.Keychain = method.Get("keychain")
			}
		}
		if key != nil {
			encryption := 0
			if n := p.firstIntOrNil(capsValues(key, "encryption_type")); n != nil {
				encryption = *n
			}
			auth.Key = &OSPFKey{EncryptionType: encryption, Value: key.Get("value")}
		}
		cfg.Authentication = auth
		set = true
	}

	if !set {
		return nil
	}
	return cfg
}

// ISIS collects the interface IS-IS configuration from its section.
func (l *InterfaceLine) ISIS() *ISISConfig {
	p := l.session
	cfg := &ISISConfig{}
	set := false

	if v := p.firstOrNil(l.SearchChildrenGroup(ifaceISISProcessRe, "name")); v != nil {
		cfg.Process = v
		set = true
	}
	if v := p.firstOrNil(l.SearchChildrenGroup(ifaceISISNetworkRe, "network_type")); v != nil {
		cfg.NetworkType = v
		set = true
	}
	if v := p.firstOrNil(l.SearchChildrenGroup(ifaceISISCircuitRe, "circuit_type")); v != nil {
		cfg.CircuitType = v
		set = true
	}
	for _, caps := range l.SearchChildrenGroups(ifaceISISMetricRe) {
		if n := p.firstIntOrNil(capsValues(caps, "metric")); n != nil {
			cfg.Metrics = append(cfg.Metrics, ISISMetric{Metric: *n, Level: caps.Get("level")})
			set = true
		}
	}

	if !set {
		return nil
	}
	return cfg
}

// ToModel builds the typed model of the interface section.
func (l *InterfaceLine) ToModel() InterfaceModel {
	l.session.logger.Debug("building model for interface", "interface", l.Name())
	model := InterfaceModel{
		Name:         l.Name(),
		Enabled:      l.IsEnabled(),
		Description:  l.Description(),
		MTU:          l.MTU(),
		Bandwidth:    l.Bandwidth(),
		Delay:        l.Delay(),
		LoadInterval: l.LoadInterval(),
		CDP:          l.CDP(),
		LLDP:         l.LLDP(),
	}

	ipv4 := l.IPv4Addresses()
	vrf := l.VRF()
	ipMTU := l.IPMTU()
	ospf := l.OSPF()
	isis := l.ISIS()
	if len(ipv4) > 0 || vrf != nil || ipMTU != nil || ospf != nil || isis != nil {
		model.L3 = &RoutePortModel{
			IPv4:  ipv4,
			VRF:   vrf,
			IPMTU: ipMTU,
			OSPF:  ospf,
			ISIS:  isis,
		}
	}
	return model
}

func firstCaptures(all []Captures) Captures {
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

func capsValues(caps Captures, key string) []string {
	if v, ok := caps[key]; ok && v != nil {
		return []string{*v}
	}
	return nil
}

func boolPtr(v bool) *bool    { return &v }
func strPtr(v string) *string { return &v }
