package service

import (
	"strings"

	"github.com/debugg-er/zootube-api-sub000/internal/auth/domain"
	"github.com/mssola/useragent"
)

const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
	DeviceBot     = "bot"
)

// ParseDevice extracts the device metadata stored on a login log.
func ParseDevice(userAgent string) domain.DeviceInfo {
	if strings.TrimSpace(userAgent) == "" {
		return domain.DeviceInfo{}
	}

	ua := useragent.New(userAgent)
	info := domain.DeviceInfo{
		OS:     ua.OS(),
		Device: deviceType(ua, userAgent),
		CPU:    cpuArch(userAgent),
	}
	if name, version := ua.Browser(); name != "" {
		info.Browser = strings.TrimSpace(name + " " + version)
	}
	return info
}

func deviceType(ua *useragent.UserAgent, raw string) string {
	lower := strings.ToLower(raw)
	switch {
	case ua.Bot():
		return DeviceBot
	case strings.Contains(lower, "ipad") || strings.Contains(lower, "tablet"):
		return DeviceTablet
	case ua.Mobile():
		return DeviceMobile
	default:
		return DeviceDesktop
	}
}

// cpuArch covers the architecture tokens browsers actually send.
func cpuArch(raw string) string {
	lower := strings.ToLower(raw)
	switch {
	case strings.Contains(lower, "x86_64"), strings.Contains(lower, "x64"),
		strings.Contains(lower, "win64"), strings.Contains(lower, "amd64"), strings.Contains(lower, "wow64"):
		return "amd64"
	case strings.Contains(lower, "aarch64"), strings.Contains(lower, "arm64"):
		return "arm64"
	case strings.Contains(lower, "armv7"), strings.Contains(lower, "armv8"):
		return "arm"
	case strings.Contains(lower, "i686"), strings.Contains(lower, "i386"):
		return "ia32"
	default:
		return ""
	}
}
