package collector

import "github.com/siderolabs/go-smbios/smbios"

// collectHardware reads the SMBIOS system identity from the DMI tables.
// Hosts without readable DMI data (containers, unprivileged runs) report
// the section as unavailable rather than failing the report.
func collectHardware() (*Hardware, error) {
	s, err := smbios.New()
	if err != nil {
		return nil, err
	}

	sys := s.SystemInformation
	return &Hardware{
		Manufacturer: sys.Manufacturer,
		Product:      sys.ProductName,
		Serial:       sys.SerialNumber,
		UUID:         sys.UUID,
	}, nil
}
