package generator_test

import (
	"encoding/json"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aalsahee/alertgen/internal/domain/alert"
	"github.com/aalsahee/alertgen/internal/generator"
)

var ngavFieldSet = []string{
	"type", "id", "legacy_alert_id", "org_key", "create_time",
	"last_update_time", "first_event_time", "last_event_time", "threat_id",
	"severity", "category", "device_id", "device_os", "device_os_version",
	"device_name", "device_username", "policy_id", "policy_name",
	"target_value", "workflow", "device_internal_ip", "device_external_ip",
	"alert_url", "reason", "reason_code", "process_name", "device_location",
	"created_by_event_id", "threat_indicators", "threat_cause_actor_sha256",
	"threat_cause_actor_name", "threat_cause_actor_process_pid",
	"threat_cause_reputation", "threat_cause_threat_category",
	"threat_cause_vector", "threat_cause_cause_event_id",
	"blocked_threat_category", "not_blocked_threat_category",
	"kill_chain_status", "run_state", "policy_applied",
}

func newNGAVGenerator(t *testing.T, seed int64) *generator.NGAVGenerator {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	return generator.NewNGAVGenerator(rng, generator.DefaultPools()).
		WithBaseTime(time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC))
}

func TestNGAVGenerator_Count(t *testing.T) {
	assert.Empty(t, newNGAVGenerator(t, 1).Generate(0))
	assert.Len(t, newNGAVGenerator(t, 1).Generate(1), 1)
	assert.Len(t, newNGAVGenerator(t, 1).Generate(250), 250)
}

func TestNGAVGenerator_FieldSet(t *testing.T) {
	alerts := newNGAVGenerator(t, 2).Generate(50)

	for _, a := range alerts {
		raw, err := json.Marshal(a)
		require.NoError(t, err)

		var fields map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(raw, &fields))

		require.Len(t, fields, len(ngavFieldSet))
		for _, name := range ngavFieldSet {
			assert.Contains(t, fields, name)
		}
	}
}

func TestNGAVGenerator_TimestampOrdering(t *testing.T) {
	alerts := newNGAVGenerator(t, 3).Generate(200)

	for _, a := range alerts {
		created, err := time.Parse(generator.NGAVTimeLayout, a.CreateTime)
		require.NoError(t, err)
		updated, err := time.Parse(generator.NGAVTimeLayout, a.LastUpdateTime)
		require.NoError(t, err)
		first, err := time.Parse(generator.NGAVTimeLayout, a.FirstEventTime)
		require.NoError(t, err)
		last, err := time.Parse(generator.NGAVTimeLayout, a.LastEventTime)
		require.NoError(t, err)

		assert.False(t, updated.Before(created), "last_update_time must not precede create_time")
		assert.False(t, first.After(last), "first_event_time must not follow last_event_time")
		assert.Equal(t, created, last, "last_event_time must equal create_time")
		assert.Equal(t, a.LastUpdateTime, a.Workflow.LastUpdateTime)
	}
}

func TestNGAVGenerator_ContainmentInvariants(t *testing.T) {
	alerts := newNGAVGenerator(t, 4).Generate(2000)

	var low, high int
	for _, a := range alerts {
		require.GreaterOrEqual(t, a.Severity, 1)
		require.LessOrEqual(t, a.Severity, 5)

		if a.Severity < 3 {
			low++
			assert.Equal(t, alert.CategoryUnknown, a.BlockedThreatCategory)
			assert.Equal(t, a.ThreatCauseThreatCategory, a.NotBlockedThreatCategory)
			assert.Equal(t, alert.RunStateRan, a.RunState)
			assert.Equal(t, alert.PolicyStateNotApplied, a.PolicyApplied)
		} else {
			high++
			assert.Equal(t, a.ThreatCauseThreatCategory, a.BlockedThreatCategory)
			assert.Equal(t, alert.CategoryUnknown, a.NotBlockedThreatCategory)
			assert.Contains(t, []string{alert.RunStateRan, alert.RunStateBlocked}, a.RunState)
			assert.Contains(t, []string{alert.PolicyStateNotApplied, alert.PolicyStateApplied}, a.PolicyApplied)
		}
	}

	// Both severity bands must actually occur at this sample size.
	assert.Positive(t, low)
	assert.Positive(t, high)
}

func TestNGAVGenerator_RecordShape(t *testing.T) {
	alerts := newNGAVGenerator(t, 5).Generate(200)

	for _, a := range alerts {
		assert.Equal(t, alert.TypeCBAnalytics, a.Type)
		assert.Equal(t, generator.OrgKey, a.OrgKey)
		assert.Equal(t, "WINDOWS", a.DeviceOS)

		// The reason narrative embeds the same process name the record chose.
		assert.Contains(t, a.Reason, a.ProcessName)
		assert.Equal(t, a.ProcessName, a.ThreatCauseActorName)

		require.Len(t, a.ThreatIndicators, 1)
		ti := a.ThreatIndicators[0]
		assert.Equal(t, a.ProcessName, ti.ProcessName)
		assert.Regexp(t, `^[0-9a-f]{64}$`, ti.SHA256)
		assert.GreaterOrEqual(t, len(ti.TTPs), 1)
		assert.LessOrEqual(t, len(ti.TTPs), 3)

		assert.GreaterOrEqual(t, len(a.KillChainStatus), 1)
		assert.LessOrEqual(t, len(a.KillChainStatus), 2)
		for _, stage := range a.KillChainStatus {
			assert.Contains(t, []string{"INSTALL_RUN", "EXECUTE", "DISCOVER", "EXPLOIT"}, stage)
		}

		assert.Equal(t, alert.WorkflowStateOpen, a.Workflow.State)
		assert.Equal(t, alert.WorkflowChangedBy, a.Workflow.ChangedBy)
		assert.Empty(t, a.Workflow.Remediation)
		assert.Empty(t, a.Workflow.Comment)

		assert.Regexp(t, `^[0-9a-f]{64}$`, a.ThreatCauseActorSHA256)
		assert.Regexp(t, `^[0-9a-f]{32}$`, a.ThreatID)
		assert.Regexp(t, `^\d{4}-\d{18}-0$`, a.ThreatCauseActorPID)
		assert.Contains(t, a.AlertURL, "https://defense-prod05.conferdeploy.net/triage?incidentId=")
		assert.Contains(t, a.DeviceUsername, "@example.com")

		assert.GreaterOrEqual(t, a.PolicyID, 260000)
		assert.LessOrEqual(t, a.PolicyID, 270000)
	}
}

func TestNGAVGenerator_Deterministic(t *testing.T) {
	a := newNGAVGenerator(t, 42).Generate(25)
	b := newNGAVGenerator(t, 42).Generate(25)

	rawA, err := json.Marshal(a)
	require.NoError(t, err)
	rawB, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, rawA, rawB)
}
