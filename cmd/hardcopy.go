package cmd

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"

	"github.com/saptools/sapgui-cli/internal/output"
	"github.com/saptools/sapgui-cli/internal/session"
)

// HardCopyResult is the output of the hardcopy command.
type HardCopyResult struct {
	OK     bool    `yaml:"ok"     json:"ok"`
	Path   string  `yaml:"path"   json:"path"`
	Window string  `yaml:"window" json:"window"`
	Scale  float64 `yaml:"scale"  json:"scale"`
}

var hardcopyCmd = &cobra.Command{
	Use:   "hardcopy PATH",
	Short: "Save a screenshot of a window",
	Long: `Ask the remote session to save a PNG screenshot of a window. --scale
downsamples the image after capture, which keeps agent payloads small.`,
	Args: cobra.ExactArgs(1),
	RunE: runHardCopy,
}

func init() {
	rootCmd.AddCommand(hardcopyCmd)
	hardcopyCmd.Flags().String("window", "", "Window address (default: wnd[0])")
	hardcopyCmd.Flags().Float64("scale", 1.0, "Scale factor 0.1-1.0")
}

func runHardCopy(cmd *cobra.Command, args []string) error {
	window, _ := cmd.Flags().GetString("window")
	scale, _ := cmd.Flags().GetFloat64("scale")
	if scale <= 0 || scale > 1 {
		return fmt.Errorf("scale must be in (0, 1], got %v", scale)
	}

	return withSession(func(s *session.Session) error {
		if err := s.HardCopy(window, args[0]); err != nil {
			return err
		}
		if scale < 1 {
			if err := downscalePNG(args[0], scale); err != nil {
				return fmt.Errorf("downscale %s: %w", args[0], err)
			}
		}
		if window == "" {
			window = "wnd[0]"
		}
		return output.Print(HardCopyResult{OK: true, Path: args[0], Window: window, Scale: scale})
	})
}

// downscalePNG rewrites the PNG at path scaled by factor.
func downscalePNG(path string, factor float64) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	src, err := png.Decode(in)
	in.Close()
	if err != nil {
		return err
	}

	bounds := src.Bounds()
	w := int(float64(bounds.Dx()) * factor)
	h := int(float64(bounds.Dy()) * factor)
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	return png.Encode(out, dst)
}
