package config

// MissingField returns the name of the first required field that is empty,
// checked in fixed order: hostname, ip, scope, user. Returns "" when the
// record is complete. A record is either fully valid or fully skipped;
// there is no partial provisioning.
func (m Machine) MissingField() string {
	switch {
	case m.Hostname == "":
		return "hostname"
	case m.IP == "":
		return "ip"
	case m.Scope == "":
		return "scope"
	case m.User == "":
		return "user"
	}
	return ""
}
