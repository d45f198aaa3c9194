package collectors

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/jaypipes/ghw"

	"github.com/Augustwise/hostinspect/internal/platform"
	"github.com/Augustwise/hostinspect/internal/run"
)

// pciVendors maps PCI vendor ID prefixes to display labels, for cards
// whose driver reports no name of its own.
var pciVendors = map[string]string{
	"0x10de": "NVIDIA",
	"10de":   "NVIDIA",
	"0x1002": "AMD/ATI",
	"1002":   "AMD/ATI",
	"0x8086": "Intel",
	"8086":   "Intel",
	"0x1a03": "ASPEED",
	"1a03":   "ASPEED",
}

var quotedField = regexp.MustCompile(`"([^"]+)"`)

// GPUNames lists installed GPU device names. Sources are tried in order
// and the first non-empty, de-duplicated result wins. An empty list is a
// valid final answer meaning no GPU was detected; it is never an error.
func (c *Collector) GPUNames(ctx context.Context) []string {
	providers := []nameProvider{c.gpusFromLibrary}
	switch c.OS {
	case platform.Windows:
		providers = append(providers, c.gpusFromWMI, c.gpusFromPowerShell, c.gpusFromWMIC)
	case platform.Linux:
		providers = append(providers, c.gpusFromLspci, c.gpusFromNvidiaProc, c.gpusFromDRM)
	default:
		return nil
	}
	for _, p := range providers {
		if names := uniqueOrdered(p(ctx)); len(names) > 0 {
			return names
		}
	}
	return nil
}

// gpusFromLibrary enumerates graphics cards through ghw, chrooted to the
// same filesystem root as the rest of the probes.
func (c *Collector) gpusFromLibrary(context.Context) []string {
	root := c.Root
	if root == "" {
		root = "/"
	}
	info, err := ghw.GPU(ghw.WithDisableWarnings(), ghw.WithChroot(root))
	if err != nil {
		return nil
	}
	var names []string
	for _, card := range info.GraphicsCards {
		if card.DeviceInfo == nil || card.DeviceInfo.Product == nil {
			continue
		}
		name := card.DeviceInfo.Product.Name
		if card.DeviceInfo.Vendor != nil && card.DeviceInfo.Vendor.Name != "" {
			name = card.DeviceInfo.Vendor.Name + " " + name
		}
		names = append(names, name)
	}
	return names
}

// gpusFromPowerShell enumerates video controller names via CIM.
func (c *Collector) gpusFromPowerShell(ctx context.Context) []string {
	ctx, cancel := context.WithTimeout(ctx, run.DefaultTimeout)
	defer cancel()

	out, err := c.Runner.Run(ctx, "powershell", "-NoProfile", "-Command",
		"Get-CimInstance Win32_VideoController | Select-Object -ExpandProperty Name")
	if err != nil {
		return nil
	}
	var names []string
	for _, line := range strings.Split(string(out), "\n") {
		if v := strings.TrimSpace(line); v != "" {
			names = append(names, v)
		}
	}
	return names
}

// gpusFromWMIC parses Name= lines from the legacy WMI command-line client.
func (c *Collector) gpusFromWMIC(ctx context.Context) []string {
	ctx, cancel := context.WithTimeout(ctx, run.DefaultTimeout)
	defer cancel()

	out, err := c.Runner.Run(ctx, "wmic", "path", "Win32_VideoController", "get", "Name", "/value")
	if err != nil {
		return nil
	}
	var names []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "Name=") {
			continue
		}
		if v := strings.TrimSpace(strings.TrimPrefix(line, "Name=")); v != "" {
			names = append(names, v)
		}
	}
	return names
}

// gpusFromLspci picks display-class devices out of machine-readable lspci
// output. Quoted fields are class, vendor and device in that order.
func (c *Collector) gpusFromLspci(ctx context.Context) []string {
	ctx, cancel := context.WithTimeout(ctx, run.DefaultTimeout)
	defer cancel()

	out, err := c.Runner.Run(ctx, "lspci", "-mm", "-nn")
	if err != nil {
		return nil
	}
	var names []string
	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.Contains(line, "VGA compatible controller") &&
			!strings.Contains(line, "3D controller") &&
			!strings.Contains(line, "Display controller") {
			continue
		}
		fields := quotedField.FindAllStringSubmatch(line, -1)
		if len(fields) >= 3 {
			names = append(names, fields[1][1]+" "+fields[2][1])
		}
	}
	return names
}

// gpusFromNvidiaProc reads the Model field of the proprietary NVIDIA
// driver's per-device information files.
func (c *Collector) gpusFromNvidiaProc(context.Context) []string {
	infoFiles, err := filepath.Glob(c.path("proc/driver/nvidia/gpus/*/information"))
	if err != nil {
		return nil
	}
	var names []string
	for _, infoFile := range infoFiles {
		f, err := os.Open(infoFile)
		if err != nil {
			continue
		}
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			line := sc.Text()
			if !strings.HasPrefix(line, "Model:") {
				continue
			}
			if v := strings.TrimSpace(strings.TrimPrefix(line, "Model:")); v != "" {
				names = append(names, "NVIDIA "+v)
			}
			break
		}
		f.Close()
	}
	return names
}

// gpusFromDRM synthesizes names from the sysfs DRM card directories,
// mapping each card's PCI vendor ID to a label and appending the bound
// driver when known.
func (c *Collector) gpusFromDRM(context.Context) []string {
	cards, err := filepath.Glob(c.path("sys/class/drm/card[0-9]*"))
	if err != nil {
		return nil
	}
	var names []string
	for _, card := range cards {
		data, err := os.ReadFile(filepath.Join(card, "device", "uevent"))
		if err != nil {
			continue
		}
		var driver, pciID string
		for _, line := range strings.Split(string(data), "\n") {
			if v, ok := strings.CutPrefix(line, "DRIVER="); ok {
				driver = strings.TrimSpace(v)
			} else if v, ok := strings.CutPrefix(line, "PCI_ID="); ok {
				pciID = strings.TrimSpace(v)
			}
		}
		if pciID == "" {
			continue
		}
		vendorHex, _, _ := strings.Cut(pciID, ":")
		vendor, ok := pciVendors[strings.ToLower(vendorHex)]
		if !ok {
			continue
		}
		if driver != "" {
			names = append(names, vendor+" ("+driver+")")
		} else {
			names = append(names, vendor+" GPU")
		}
	}
	return names
}

// uniqueOrdered trims entries and drops empties and duplicates, keeping
// first-seen order.
func uniqueOrdered(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	var out []string
	for _, item := range items {
		v := strings.TrimSpace(item)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
