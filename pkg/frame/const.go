package frame

// Format is an image encoding name as carried in the format field of an
// image message, e.g. "bgr8" or "16UC1".
type Format string

const (
	// Color and mono formats

	FormatRGB8   Format = "rgb8"
	FormatRGBA8  Format = "rgba8"
	FormatRGB16  Format = "rgb16"
	FormatRGBA16 Format = "rgba16"
	FormatBGR8   Format = "bgr8"
	FormatBGRA8  Format = "bgra8"
	FormatBGR16  Format = "bgr16"
	FormatBGRA16 Format = "bgra16"
	FormatMono8  Format = "mono8"
	FormatMono16 Format = "mono16"

	// Bayer formats, one channel holding the raw mosaic

	FormatBayerRGGB8  Format = "bayer_rggb8"
	FormatBayerBGGR8  Format = "bayer_bggr8"
	FormatBayerGBRG8  Format = "bayer_gbrg8"
	FormatBayerGRBG8  Format = "bayer_grbg8"
	FormatBayerRGGB16 Format = "bayer_rggb16"
	FormatBayerBGGR16 Format = "bayer_bggr16"
	FormatBayerGBRG16 Format = "bayer_gbrg16"
	FormatBayerGRBG16 Format = "bayer_grbg16"

	// Generic matrix formats, named <bits><U|S|F>C<channels>

	Format8UC1  Format = "8UC1"
	Format8UC2  Format = "8UC2"
	Format8UC3  Format = "8UC3"
	Format8UC4  Format = "8UC4"
	Format8SC1  Format = "8SC1"
	Format8SC2  Format = "8SC2"
	Format8SC3  Format = "8SC3"
	Format8SC4  Format = "8SC4"
	Format16UC1 Format = "16UC1"
	Format16UC2 Format = "16UC2"
	Format16UC3 Format = "16UC3"
	Format16UC4 Format = "16UC4"
	Format16SC1 Format = "16SC1"
	Format16SC2 Format = "16SC2"
	Format16SC3 Format = "16SC3"
	Format16SC4 Format = "16SC4"
	Format32SC1 Format = "32SC1"
	Format32SC2 Format = "32SC2"
	Format32SC3 Format = "32SC3"
	Format32SC4 Format = "32SC4"
	Format32FC1 Format = "32FC1"
	Format32FC2 Format = "32FC2"
	Format32FC3 Format = "32FC3"
	Format32FC4 Format = "32FC4"
	Format64FC1 Format = "64FC1"
	Format64FC2 Format = "64FC2"
	Format64FC3 Format = "64FC3"
	Format64FC4 Format = "64FC4"
)

// Depth aliases

// FormatDepthMillimeters is a 16 bit depth image in millimeters
const FormatDepthMillimeters = Format16UC1

// FormatDepthMeters is a 32 bit float depth image in meters
const FormatDepthMeters = Format32FC1
