package alert

// Workflow tracks the triage state attached to an NGAV alert.
type Workflow struct {
	State          string `json:"state"`
	Remediation    string `json:"remediation"`
	LastUpdateTime string `json:"last_update_time"`
	Comment        string `json:"comment"`
	ChangedBy      string `json:"changed_by"`
}

// ThreatIndicator ties a process to the TTPs observed on it.
type ThreatIndicator struct {
	ProcessName string   `json:"process_name"`
	SHA256      string   `json:"sha256"`
	TTPs        []string `json:"ttps"`
}

// NGAVAlert is an antivirus threat-classification record. Timestamps carry
// second precision with a literal UTC marker, coarser than the EDR family;
// the mismatch is present in the sampled feeds and is kept as-is.
type NGAVAlert struct {
	Type                      string            `json:"type"`
	ID                        string            `json:"id"`
	LegacyAlertID             string            `json:"legacy_alert_id"`
	OrgKey                    string            `json:"org_key"`
	CreateTime                string            `json:"create_time"`
	LastUpdateTime            string            `json:"last_update_time"`
	FirstEventTime            string            `json:"first_event_time"`
	LastEventTime             string            `json:"last_event_time"`
	ThreatID                  string            `json:"threat_id"`
	Severity                  int               `json:"severity"`
	Category                  string            `json:"category"`
	DeviceID                  int64             `json:"device_id"`
	DeviceOS                  string            `json:"device_os"`
	DeviceOSVersion           string            `json:"device_os_version"`
	DeviceName                string            `json:"device_name"`
	DeviceUsername            string            `json:"device_username"`
	PolicyID                  int               `json:"policy_id"`
	PolicyName                string            `json:"policy_name"`
	TargetValue               string            `json:"target_value"`
	Workflow                  Workflow          `json:"workflow"`
	DeviceInternalIP          string            `json:"device_internal_ip"`
	DeviceExternalIP          string            `json:"device_external_ip"`
	AlertURL                  string            `json:"alert_url"`
	Reason                    string            `json:"reason"`
	ReasonCode                string            `json:"reason_code"`
	ProcessName               string            `json:"process_name"`
	DeviceLocation            string            `json:"device_location"`
	CreatedByEventID          string            `json:"created_by_event_id"`
	ThreatIndicators          []ThreatIndicator `json:"threat_indicators"`
	ThreatCauseActorSHA256    string            `json:"threat_cause_actor_sha256"`
	ThreatCauseActorName      string            `json:"threat_cause_actor_name"`
	ThreatCauseActorPID       string            `json:"threat_cause_actor_process_pid"`
	ThreatCauseReputation     string            `json:"threat_cause_reputation"`
	ThreatCauseThreatCategory string            `json:"threat_cause_threat_category"`
	ThreatCauseVector         string            `json:"threat_cause_vector"`
	ThreatCauseCauseEventID   string            `json:"threat_cause_cause_event_id"`
	BlockedThreatCategory     string            `json:"blocked_threat_category"`
	NotBlockedThreatCategory  string            `json:"not_blocked_threat_category"`
	KillChainStatus           []string          `json:"kill_chain_status"`
	RunState                  string            `json:"run_state"`
	PolicyApplied             string            `json:"policy_applied"`
}

// Fixed discriminators and workflow attribution for the NGAV family.
const (
	TypeCBAnalytics    = "CB_ANALYTICS"
	WorkflowStateOpen  = "OPEN"
	WorkflowChangedBy  = "Carbon Black"
	CategoryNonMalware = "NON_MALWARE"
)

// SeverityLevel returns the human-readable label for the alert severity.
func (a *NGAVAlert) SeverityLevel() string {
	return severityLevel(a.Severity)
}

// IsCritical reports whether the alert falls in the critical/high band.
func (a *NGAVAlert) IsCritical() bool {
	return a.Severity <= 2
}

// AlertKey returns the device-scoped dedup key for the alert.
func (a *NGAVAlert) AlertKey() string {
	return a.DeviceName + "_" + a.ID
}

// IsMalware reports whether the threat cause was classified as malware.
func (a *NGAVAlert) IsMalware() bool {
	return a.ThreatCauseThreatCategory != CategoryNonMalware
}

// IsBlocked reports whether the sensor actively contained the threat.
func (a *NGAVAlert) IsBlocked() bool {
	return a.PolicyApplied == PolicyStateApplied || a.BlockedThreatCategory != CategoryUnknown
}
