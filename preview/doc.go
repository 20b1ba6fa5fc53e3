// Package preview rasterizes a smoothed path and its waypoints into an
// image, for eyeballing the spline produced by package smooth.
//
//	img, err := preview.Render(dense, waypoints, preview.DefaultOptions())
//	if err != nil {
//	    return err
//	}
//	err = preview.SavePNG("route.png", img)
//
// The curve is drawn as a stroked polyline with golang.org/x/image/vector.
// World coordinates are fitted into the image with a uniform scale and the
// y axis pointing up.
package preview
