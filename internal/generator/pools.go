package generator

import "fmt"

// OrgKey is the fixed organization key stamped on every record in a run.
const OrgKey = "7DMF69PK"

// Pools holds the value pools shared by both alert families. Hostnames and
// IP ranges are identical across families; process-name pools differ and
// stay per-family.
type Pools struct {
	DeviceNames []string
	InternalIPs []string
	ExternalIPs []string
	Usernames   []string

	EDRProcessNames  []string
	NGAVProcessNames []string
}

// DefaultPools builds the fixed pools the sampled feeds draw from: lab
// Windows hostnames, a private internal range, and one public /16 slice.
func DefaultPools() *Pools {
	p := &Pools{
		Usernames:        []string{"admin", "user", "aalsahee", "test", "developer"},
		EDRProcessNames:  []string{"cmd.exe", "powershell.exe", "python.exe", "chrome.exe", "firefox.exe", "excel.exe", "winword.exe", "notepad.exe", "svchost.exe", "explorer.exe"},
		NGAVProcessNames: []string{"python.exe", "powershell.exe", "cmd.exe", "chrome.exe", "firefox.exe", "excel.exe", "winword.exe", "java.exe", "node.exe", "ruby.exe"},
	}
	for i := 10; i < 50; i++ {
		for j := 1; j < 5; j++ {
			p.DeviceNames = append(p.DeviceNames, fmt.Sprintf("WIN-%d-H%d", i, j))
		}
	}
	for i := 1; i < 10; i++ {
		for j := 10; j < 250; j++ {
			p.InternalIPs = append(p.InternalIPs, fmt.Sprintf("192.168.%d.%d", i, j))
		}
	}
	for i := 200; i < 256; i++ {
		for j := 1; j < 250; j++ {
			p.ExternalIPs = append(p.ExternalIPs, fmt.Sprintf("130.126.%d.%d", i, j))
		}
	}
	return p
}
