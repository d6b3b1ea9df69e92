// Package hostinfo describes the machine the checker runs on.
package hostinfo

import (
	"context"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/host"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/models"
)

// infoFunc is replaced in tests.
var infoFunc = host.InfoWithContext

// Collect returns what is known about the local host. Fields the platform
// cannot report are left empty; the architecture is always set.
func Collect(ctx context.Context) models.HostInfo {
	info := models.HostInfo{Architecture: runtime.GOARCH}

	stat, err := infoFunc(ctx)
	if err != nil || stat == nil {
		return info
	}
	info.Hostname = stat.Hostname
	info.OSType = normalizeOSType(stat.OS)
	info.OSVersion = strings.TrimSpace(stat.Platform + " " + stat.PlatformVersion)
	info.OSBuild = stat.KernelVersion
	return info
}

func normalizeOSType(os string) string {
	if os == "darwin" {
		return "macos"
	}
	return os
}
