package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/navpatrol/assets"
	"github.com/automoto/navpatrol/navmesh"
	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:   "navmeshconv",
		Short: "convert and bake navmesh geometry",
	}
	root.AddCommand(ConvertCmd(), BakeCmd(), SchemaCmd())
	if err := root.Execute(); err != nil {
		log.Error("navmeshconv failed", "err", err)
		os.Exit(1)
	}
}

// ConvertCmd turns a Wavefront OBJ into indexed geometry JSON.
func ConvertCmd() *cobra.Command {
	var out string
	var rotateX float64
	c := &cobra.Command{
		Use:   "convert <in.obj|in.json>",
		Short: "write geometry JSON, optionally rotated about X",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := readGeometry(args[0])
			if err != nil {
				return err
			}
			if rotateX != 0 {
				g.RotateX(mgl64.DegToRad(rotateX))
			}
			data, err := json.Marshal(g)
			if err != nil {
				return fmt.Errorf("marshal geometry: %w", err)
			}
			if out == "" {
				out = replaceExt(args[0], ".json")
			}
			if err := writeFile(out, data); err != nil {
				return err
			}
			log.Info("geometry written", "out", out, "vertices", g.VertexCount())
			return nil
		},
	}
	c.Flags().StringVar(&out, "out", "", "output path (default: input with .json)")
	c.Flags().Float64Var(&rotateX, "rotate-x", 0, "rotation about X in degrees")
	return c
}

// BakeCmd builds the zone graph and stores it as a msgpack .zone file.
func BakeCmd() *cobra.Command {
	var out string
	var rotateX float64
	var tolerance float64
	c := &cobra.Command{
		Use:   "bake <in.obj|in.json>",
		Short: "build the navmesh zone and write it as a .zone file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := args[0]
			zone, err := assets.LoadZone(os.DirFS(filepath.Dir(in)), filepath.Base(in), tolerance, mgl64.DegToRad(rotateX))
			if err != nil {
				return err
			}
			data, err := navmesh.EncodeZone(zone)
			if err != nil {
				return err
			}
			if out == "" {
				out = replaceExt(in, ".zone")
			}
			if err := writeFile(out, data); err != nil {
				return err
			}
			log.Info("zone baked", "out", out, "groups", len(zone.Groups), "vertices", len(zone.Vertices))
			return nil
		},
	}
	c.Flags().StringVar(&out, "out", "", "output path (default: input with .zone)")
	c.Flags().Float64Var(&rotateX, "rotate-x", 0, "rotation about X in degrees")
	c.Flags().Float64Var(&tolerance, "merge-tolerance", 0.02, "vertex merge distance")
	return c
}

// SchemaCmd prints the JSON Schema of a data file format.
func SchemaCmd() *cobra.Command {
	var out string
	c := &cobra.Command{
		Use:       "schema <geometry|model>",
		Short:     "emit the JSON Schema for geometry or model files",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"geometry", "model"},
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := buildSchema(args[0])
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(schema, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal schema: %w", err)
			}
			data = append(data, '\n')
			if out == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return writeFile(out, data)
		},
	}
	c.Flags().StringVar(&out, "out", "", "path to write the schema (default: stdout)")
	return c
}

func buildSchema(kind string) (*jsonschema.Schema, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	switch kind {
	case "geometry":
		schema := reflector.Reflect(new(navmesh.Geometry))
		schema.Title = "Navmesh geometry"
		schema.Description = "Triangle soup read by navmeshconv and the navmesh loader"
		return schema, nil
	case "model":
		schema := reflector.Reflect(new(assets.ModelDesc))
		schema.Title = "Model descriptor"
		schema.Description = "Scene graph and animation clips of a skeletal asset"
		return schema, nil
	}
	return nil, fmt.Errorf("unknown schema %q", kind)
}

func readGeometry(path string) (*navmesh.Geometry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".obj") {
		return navmesh.ParseOBJ(f)
	}
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return navmesh.ParseGeometryJSON(data)
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}
