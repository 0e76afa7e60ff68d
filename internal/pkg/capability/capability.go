package capability

import (
	"context"
	"errors"
	"time"

	"github.com/staffhub-id/attendance-backend-go/internal/pkg/geo"
)

// Result is the tri-state outcome of a capability probe. Probes report a
// Result instead of failing so the punch pipeline can name the capability
// that blocked it.
type Result string

const (
	Granted     Result = "granted"
	Denied      Result = "denied"
	Unsupported Result = "unsupported"
)

// DefaultLocationTimeout bounds a single location fix. Cached positions are
// never accepted, so a slow fix has to fail rather than return stale data.
const DefaultLocationTimeout = 10 * time.Second

// ErrUnsupported is returned by providers running on hardware without the
// capability at all, as opposed to a user refusing it.
var ErrUnsupported = errors.New("capability: not supported on this device")

// LocationProvider produces a high-accuracy position fix. Implementations
// must not serve cached fixes (maximum age zero).
type LocationProvider interface {
	Locate(ctx context.Context) (geo.Point, error)
}

// CameraDevice opens the capture device. The returned release func must be
// called as soon as the probe is done; holding the device open is reserved
// for an explicitly entered scanning mode.
type CameraDevice interface {
	Open(ctx context.Context) (release func(), err error)
}

// Acquirer is what the punch pipeline consumes: sequenced probes, each
// resolving to a tri-state Result, never returning an error.
type Acquirer interface {
	AcquireLocation(ctx context.Context) (geo.Point, Result)
	ProbeCamera(ctx context.Context) Result
}

// DeviceAcquirer sequences real device probes with the timeout policy
// applied. Scanning mode is tracked as a flag only; while set, the camera
// probe skips the open/release cycle because the device is already held.
type DeviceAcquirer struct {
	Location        LocationProvider
	Camera          CameraDevice
	LocationTimeout time.Duration

	scanning bool
}

func NewDeviceAcquirer(location LocationProvider, camera CameraDevice) *DeviceAcquirer {
	return &DeviceAcquirer{
		Location:        location,
		Camera:          camera,
		LocationTimeout: DefaultLocationTimeout,
	}
}

// AcquireLocation requests a fresh high-accuracy fix bounded by the
// configured timeout. Timeouts and refusals surface as Denied; absent
// hardware as Unsupported.
func (a *DeviceAcquirer) AcquireLocation(ctx context.Context) (geo.Point, Result) {
	if a.Location == nil {
		return geo.Point{}, Unsupported
	}

	timeout := a.LocationTimeout
	if timeout <= 0 {
		timeout = DefaultLocationTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	point, err := a.Location.Locate(ctx)
	if err != nil {
		if errors.Is(err, ErrUnsupported) {
			return geo.Point{}, Unsupported
		}
		return geo.Point{}, Denied
	}
	return point, Granted
}

// ProbeCamera opens the capture device solely to test availability and
// releases it immediately, on success and failure alike.
func (a *DeviceAcquirer) ProbeCamera(ctx context.Context) Result {
	if a.Camera == nil {
		return Unsupported
	}
	if a.scanning {
		return Granted
	}

	release, err := a.Camera.Open(ctx)
	if release != nil {
		defer release()
	}
	if err != nil {
		if errors.Is(err, ErrUnsupported) {
			return Unsupported
		}
		return Denied
	}
	return Granted
}

// SetScanning toggles the explicit scanning mode flag.
func (a *DeviceAcquirer) SetScanning(on bool) {
	a.scanning = on
}

// Scanning reports whether scanning mode is active.
func (a *DeviceAcquirer) Scanning() bool {
	return a.scanning
}

// Reported is an Acquirer backed by results the punching device already
// resolved and sent with the request. The HTTP handler builds one of these
// from the punch payload.
type Reported struct {
	Position    *geo.Point
	LocationRes Result
	CameraRes   Result
}

func (r Reported) AcquireLocation(ctx context.Context) (geo.Point, Result) {
	if r.LocationRes == Granted && r.Position != nil {
		return *r.Position, Granted
	}

	res := r.LocationRes
	switch res {
	case "":
		res = Unsupported
	case Granted:
		// Granted without a fix is a failed acquisition, not a position
		// at coordinates (0, 0).
		res = Denied
	}
	return geo.Point{}, res
}

func (r Reported) ProbeCamera(ctx context.Context) Result {
	if r.CameraRes == "" {
		return Unsupported
	}
	return r.CameraRes
}
