package generator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/aalsahee/alertgen/internal/domain/alert"
)

// EDRTimeLayout is the millisecond-precision UTC layout used by the EDR
// family. The NGAV family uses a coarser second-precision layout; the
// mismatch is present in the sampled feeds and is preserved.
const EDRTimeLayout = "2006-01-02T15:04:05.000Z"

// lookbackWindow is the trailing window creation timestamps are drawn from.
const lookbackWindow = 7 * 24 * time.Hour

var (
	edrReportNames = []string{
		"Execution - Command and Scripting Interpreter Execution",
		"Discovery - packet capture tools",
		"Execution - SysInternals Use",
		"Persistence - Regmod Run or Runonce Key Modification",
		"Defense Evasion - Process Injection",
		"Credential Access - Credential Dumping",
		"Lateral Movement - Remote Services",
		"Collection - Data from Local System",
		"Exfiltration - Data Transfer Size Limits",
		"Impact - Service Stop",
	}

	edrWatchlistNames = []string{
		"ATT&CK Framework",
		"Carbon Black Endpoint Visibility",
		"Carbon Black Endpoint Suspicious Indicators",
		"Custom Threat Intelligence",
	}

	edrParentNames = []string{"services.exe", "explorer.exe", "svchost.exe"}

	edrCmdlineDirs = []string{"Windows\\system32", "Program Files", "Users\\Public"}
	edrPathDirs    = []string{"windows\\system32", "program files", "users\\public"}
	edrFlags       = []string{"/c", "-ExecutionPolicy Bypass", "--version", "/k", ""}

	edrPublisherNames = []string{"Microsoft Corporation", "Mozilla Corporation", "Google LLC", "Unknown"}

	// REP_WHITE dominates 3:1, matching the observed reputation skew.
	edrReputations = []string{"REP_WHITE", "REP_WHITE", "REP_WHITE", "REP_NEUTRAL"}

	edrTactics = []string{"execution", "persistence", "defense-evasion", "discovery"}

	edrSeverities      = []int{1, 2, 3, 4}
	edrSeverityWeights = []float64{0.1, 0.2, 0.4, 0.3}
)

// EDRGenerator produces independent watchlist-hit records from an injected
// random source; a fixed seed reproduces the run byte-for-byte.
type EDRGenerator struct {
	rng   *rand.Rand
	pools *Pools
	now   time.Time
}

// NewEDRGenerator creates a generator anchored at the current time.
func NewEDRGenerator(rng *rand.Rand, pools *Pools) *EDRGenerator {
	return &EDRGenerator{rng: rng, pools: pools, now: time.Now().UTC()}
}

// WithBaseTime anchors the 7-day creation window at now instead of the wall
// clock.
func (g *EDRGenerator) WithBaseTime(now time.Time) *EDRGenerator {
	g.now = now.UTC()
	return g
}

// Generate returns exactly n records. There is no failure path: every value
// is drawn from a non-empty fixed pool or a well-formed numeric range.
func (g *EDRGenerator) Generate(n int) []alert.EDRAlert {
	alerts := make([]alert.EDRAlert, 0, n)
	for i := 0; i < n; i++ {
		alerts = append(alerts, g.buildAlert())
	}
	return alerts
}

func (g *EDRGenerator) buildAlert() alert.EDRAlert {
	r := g.rng
	deviceName := pickString(r, g.pools.DeviceNames)
	createTime := drawCreateTime(r, g.now)

	return alert.EDRAlert{
		Schema:           1,
		CreateTime:       createTime.Format(EDRTimeLayout),
		DeviceExternalIP: pickString(r, g.pools.ExternalIPs),
		DeviceID:         randRange64(r, 90000000, 99999999),
		DeviceInternalIP: pickString(r, g.pools.InternalIPs),
		DeviceName:       deviceName,
		DeviceOS:         "WINDOWS",
		IOCHit:           fmt.Sprintf("(process_name:%s* OR process_cmdline:*suspicious*) -enriched:true", pickString(r, g.pools.EDRProcessNames)),
		IOCID:            newUUID(r) + "-0",
		OrgKey:           OrgKey,
		ParentCmdline:    "C:\\Windows\\system32\\" + pickString(r, edrParentNames),
		ParentGUID:       g.processGUID(),
		ParentHash:       []string{hexN(r, 32), hexN(r, 32)},
		ParentPath:       "c:\\windows\\system32\\" + pickString(r, edrParentNames),
		ParentPID:        randRange(r, 100, 9999),
		ParentPublisher: []alert.Publisher{{
			Name:  "Microsoft Windows",
			State: "FILE_SIGNATURE_STATE_SIGNED | FILE_SIGNATURE_STATE_VERIFIED | FILE_SIGNATURE_STATE_TRUSTED | FILE_SIGNATURE_STATE_OS",
		}},
		ParentReputation: "REP_WHITE",
		ParentUsername:   deviceName + "\\" + pickString(r, g.pools.Usernames),
		ProcessCmdline:   g.processCmdline(),
		ProcessGUID:      g.processGUID(),
		ProcessHash:      []string{hexN(r, 32), hexN(r, 32)},
		ProcessPath:      fmt.Sprintf("c:\\%s\\%s", pickString(r, edrPathDirs), pickString(r, g.pools.EDRProcessNames)),
		ProcessPID:       randRange(r, 1000, 9999),
		ProcessPublisher: []alert.Publisher{{
			Name:  pickString(r, edrPublisherNames),
			State: "FILE_SIGNATURE_STATE_SIGNED | FILE_SIGNATURE_STATE_VERIFIED | FILE_SIGNATURE_STATE_TRUSTED",
		}},
		ProcessReputation: pickString(r, edrReputations),
		ProcessUsername:   deviceName + "\\" + pickString(r, g.pools.Usernames),
		ReportID:          hexN(r, 22) + "-" + newUUID(r),
		ReportName:        pickString(r, edrReportNames),
		ReportTags: []string{
			"attack", "attackframework", "threathunting", "windows",
			fmt.Sprintf("t%d", randRange(r, 1000, 1599)),
			pickString(r, edrTactics),
		},
		Severity: edrSeverities[WeightedChoice(r, edrSeverityWeights)],
		Type:     alert.TypeWatchlistHit,
		Watchlists: []alert.Watchlist{{
			ID:   hexN(r, 22),
			Name: pickString(r, edrWatchlistNames),
		}},
	}
}

// processGUID fabricates a vendor-style composite GUID:
// ORGKEY-{hex8}-{pid as %08x}-00000000-{hex15}.
func (g *EDRGenerator) processGUID() string {
	return fmt.Sprintf("%s-%s-%08x-00000000-%s",
		OrgKey, hexN(g.rng, 8), randRange(g.rng, 1000, 9999), hexN(g.rng, 15))
}

func (g *EDRGenerator) processCmdline() string {
	cmdline := fmt.Sprintf("C:\\%s\\%s",
		pickString(g.rng, edrCmdlineDirs), pickString(g.rng, g.pools.EDRProcessNames))
	if flag := pickString(g.rng, edrFlags); flag != "" {
		cmdline += " " + flag
	}
	return cmdline
}

// drawCreateTime picks a creation instant uniformly within the trailing
// window ending at now, with sub-second entropy.
func drawCreateTime(r *rand.Rand, now time.Time) time.Time {
	base := now.Add(-lookbackWindow)
	offset := time.Duration(r.Intn(int(lookbackWindow/time.Second)+1))*time.Second +
		time.Duration(r.Intn(1000000))*time.Microsecond
	return base.Add(offset)
}
