// Package timeline implements time-indexed interpolation over keyframe
// sequences: bracket search plus linear blending of every numeric pose field.
package timeline

import (
	"github.com/atlaslab/cinemap/internal/scene"
	"github.com/atlaslab/cinemap/pkg/colorx"
)

// CameraPoseAt resolves the camera pose at query time t over an ordered-by-time
// keyframe sequence. Before the first keyframe and after the last one the
// boundary keyframe is returned exactly; in between, the bracketing pair is
// found and every pose field is lerped independently.
//
// The keyframes must already be sorted by time (scene.SortedCameraPath).
func CameraPoseAt(keyframes []scene.CameraKeyframe, t float64) scene.CameraPose {
	n := len(keyframes)
	if n == 0 {
		return scene.CameraPose{}
	}
	if t <= keyframes[0].Time {
		return keyframes[0].Pose
	}
	if t >= keyframes[n-1].Time {
		return keyframes[n-1].Pose
	}

	for i := 0; i < n-1; i++ {
		a, b := keyframes[i], keyframes[i+1]
		if t < a.Time || t > b.Time {
			continue
		}
		p := Progress(a.Time, b.Time, t)
		return lerpPose(a.Pose, b.Pose, p)
	}
	return keyframes[n-1].Pose
}

// Progress maps t within [start, end] to [0,1]. A degenerate interval yields 0
// so the earlier keyframe's values win instead of dividing by zero.
func Progress(start, end, t float64) float64 {
	span := end - start
	if span <= 0 {
		return 0
	}
	p := (t - start) / span
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

func lerpPose(a, b scene.CameraPose, p float64) scene.CameraPose {
	return scene.CameraPose{
		Lon:       colorx.Lerp(a.Lon, b.Lon, p),
		Lat:       colorx.Lerp(a.Lat, b.Lat, p),
		Zoom:      colorx.Lerp(a.Zoom, b.Zoom, p),
		TargetLon: colorx.Lerp(a.TargetLon, b.TargetLon, p),
		TargetLat: colorx.Lerp(a.TargetLat, b.TargetLat, p),
		Pitch:     colorx.Lerp(a.Pitch, b.Pitch, p),
		Bearing:   colorx.Lerp(a.Bearing, b.Bearing, p),
	}
}
