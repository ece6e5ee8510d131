// Package render turns a collected report into the HTML status page.
//
// Every collected value — process names, device strings, remote command
// output — is untrusted text and goes through html/template so it is
// escaped before it reaches the page.
package render

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/procboard/procboard/internal/collector"
	"github.com/procboard/procboard/internal/remote"
)

// Sentinel shown in place of a value that could not be determined.
const unavailable = "unavailable"

// pageData is the fully formatted view of one report. Numbers are
// pre-formatted here so the template stays a plain layout.
type pageData struct {
	Hostname  string
	LocalTime string
	Uptime    string
	CPUModel  string
	CPUSpeed  string
	CPUUsage  string
	MemTotal  string
	MemUsed   string
	OSVersion string

	Processes    []collector.ProcessEntry
	Disks        []collector.DiskEntry
	InputDevices []deviceView
	Network      []collector.NetAdapter

	Hardware *collector.Hardware

	RemoteUptime string
	RemoteCPU    string
	RemoteMemory string

	Diagnostics []string
	ReportID    string
}

type deviceView struct {
	Product      string
	Manufacturer string
	Port         string
}

// Page renders the status page for one report.
func Page(rep *collector.Report, rem remote.Report, reportID string) ([]byte, error) {
	data := pageData{
		Hostname:  orUnavailable(rep.Hostname),
		LocalTime: orUnavailable(rep.LocalTime),
		Uptime:    unavailable,
		CPUModel:  unavailable,
		CPUSpeed:  unavailable,
		CPUUsage:  unavailable,
		MemTotal:  unavailable,
		MemUsed:   unavailable,
		OSVersion: orUnavailable(rep.OSVersion),

		Processes: rep.Processes,
		Disks:     rep.Disks,
		Network:   rep.Network,
		Hardware:  rep.Hardware,

		RemoteUptime: remoteValue(rem.Uptime),
		RemoteCPU:    remoteValue(rem.CPUInfo),
		RemoteMemory: remoteValue(rem.MemoryInfo),

		Diagnostics: rep.Errors,
		ReportID:    reportID,
	}

	if rep.UptimeSeconds != nil {
		data.Uptime = fmt.Sprintf("%d", *rep.UptimeSeconds)
	}
	if rep.CPU != nil {
		if rep.CPU.Model != "" {
			data.CPUModel = rep.CPU.Model
		}
		if rep.CPU.MHz != 0 {
			data.CPUSpeed = fmt.Sprintf("%.2f", rep.CPU.MHz)
		}
	}
	if rep.CPUPercent != nil {
		data.CPUUsage = fmt.Sprintf("%.2f%%", *rep.CPUPercent)
	}
	if rep.Memory != nil {
		data.MemTotal = fmt.Sprintf("%d MB", rep.Memory.TotalMB)
		data.MemUsed = fmt.Sprintf("%d MB", rep.Memory.UsedMB)
	}

	for _, d := range rep.InputDevices {
		data.InputDevices = append(data.InputDevices, deviceView{
			Product:      orNA(d.Product),
			Manufacturer: orNA(d.Manufacturer),
			Port:         orNA(d.Port),
		})
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render page: %w", err)
	}
	return buf.Bytes(), nil
}

func orUnavailable(s string) string {
	if s == "" {
		return unavailable
	}
	return s
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func remoteValue(r remote.Result) string {
	if r.Unreachable() {
		return fmt.Sprintf("unreachable (%s)", r.Err)
	}
	return r.Output
}

var page = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html>
<head><title>System Information</title></head>
<body>
<h1>System Information</h1>
<p><strong>Hostname:</strong> {{.Hostname}}</p>
<p><strong>Date and Time:</strong> {{.LocalTime}}</p>
<p><strong>Uptime (seconds):</strong> {{.Uptime}}</p>
<p><strong>CPU Model:</strong> {{.CPUModel}}</p>
<p><strong>CPU Speed (MHz):</strong> {{.CPUSpeed}}</p>
<p><strong>CPU Usage (%, since boot):</strong> {{.CPUUsage}}</p>
<p><strong>Memory Total (MB):</strong> {{.MemTotal}}</p>
<p><strong>Memory Used (MB):</strong> {{.MemUsed}}</p>
<p><strong>OS Version:</strong> {{.OSVersion}}</p>
{{if .Hardware}}<h2>Hardware</h2>
<p><strong>Manufacturer:</strong> {{.Hardware.Manufacturer}}</p>
<p><strong>Product:</strong> {{.Hardware.Product}}</p>
<p><strong>Serial Number:</strong> {{.Hardware.Serial}}</p>
<p><strong>UUID:</strong> {{.Hardware.UUID}}</p>
{{end}}<h2>Processes</h2>
<ul>
{{range .Processes}}<li>{{.PID}}: {{.Name}}</li>
{{end}}</ul>
<h2>Disks</h2>
<ul>
{{range .Disks}}<li>{{.Name}}: {{.SizeMB}} MB</li>
{{end}}</ul>
<h2>USB Devices</h2>
<ul>
{{range .InputDevices}}<li>Product: {{.Product}}, Manufacturer: {{.Manufacturer}}, Port: {{.Port}}</li>
{{end}}</ul>
<h2>Network Adapters</h2>
<ul>
{{range .Network}}<li>{{.Interface}}: {{.Address}}</li>
{{end}}</ul>
<h2>Remote Device</h2>
<p><strong>Remote Uptime:</strong> {{.RemoteUptime}}</p>
<p><strong>Remote CPU Info:</strong></p>
<pre>{{.RemoteCPU}}</pre>
<p><strong>Remote Memory Info:</strong></p>
<pre>{{.RemoteMemory}}</pre>
{{if .Diagnostics}}<h2>Diagnostics</h2>
<ul>
{{range .Diagnostics}}<li>{{.}}</li>
{{end}}</ul>
{{end}}<footer><small>report {{.ReportID}}</small></footer>
</body>
</html>
`))
