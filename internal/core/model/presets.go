package model

// DeviceType is the class of a reference device
type DeviceType string

const (
	DeviceMobile  DeviceType = "mobile"
	DeviceTablet  DeviceType = "tablet"
	DeviceDesktop DeviceType = "desktop"
)

// DevicePreset is a static reference viewport profile
type DevicePreset struct {
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Width  int        `json:"width"`
	Height int        `json:"height"`
	Type   DeviceType `json:"type"`
}

var devicePresets = [...]DevicePreset{
	{ID: "iphone13", Name: "iPhone 13", Width: 390, Height: 844, Type: DeviceMobile},
	{ID: "iphone13Pro", Name: "iPhone 13 Pro", Width: 390, Height: 844, Type: DeviceMobile},
	{ID: "iphoneSE", Name: "iPhone SE", Width: 375, Height: 667, Type: DeviceMobile},
	{ID: "ipadPro", Name: "iPad Pro", Width: 1024, Height: 1366, Type: DeviceTablet},
	{ID: "samsungGalaxy", Name: "Samsung Galaxy S21", Width: 360, Height: 800, Type: DeviceMobile},
	{ID: "desktopHD", Name: "Desktop HD", Width: 1366, Height: 768, Type: DeviceDesktop},
	{ID: "desktopFullHD", Name: "Desktop Full HD", Width: 1920, Height: 1080, Type: DeviceDesktop},
	{ID: "desktop4K", Name: "Desktop 4K", Width: 3840, Height: 2160, Type: DeviceDesktop},
}

// DevicePresets returns a copy of the seed table in its fixed order
func DevicePresets() []DevicePreset {
	presets := make([]DevicePreset, len(devicePresets))
	copy(presets, devicePresets[:])
	return presets
}
