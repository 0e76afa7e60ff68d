package employee

// AttendanceConfig says which capabilities an employee's punch must clear.
type AttendanceConfig struct {
	GPSGeofencing bool `json:"gps_geofencing"`
	QRScan        bool `json:"qr_scan"`
}

// EmployeeProfile is the slice of an employee the attendance core needs:
// identity, branch assignment, punch requirements and shift hours.
type EmployeeProfile struct {
	ID               string
	Name             string
	BranchName       string
	AttendanceConfig AttendanceConfig
	LiveTracking     bool
	WorkingHours     string // "09:30 AM - 06:30 PM"
}

// RequiresLocation reports whether the punch pipeline must acquire a
// location fix for this employee.
func (e EmployeeProfile) RequiresLocation() bool {
	return e.AttendanceConfig.GPSGeofencing || e.LiveTracking
}

// RequiresCamera reports whether the punch pipeline must clear the camera
// capability.
func (e EmployeeProfile) RequiresCamera() bool {
	return e.AttendanceConfig.QRScan
}
