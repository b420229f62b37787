package netlist

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"impedance/pkg/component"
)

// NetlistData is the parsed form of a circuit description file.
// ACParam.Points stays zero when the file carries no .ac card.
type NetlistData struct {
	Title    string
	Elements []Element
	ACParam  struct {
		Sweep  string  // DEC, OCT, LIN
		Points int     // total sweep points
		FStart float64 // start frequency
		FStop  float64 // stop frequency
	}
	Probe struct {
		Name     string
		Terminal int
	}
}

type Element struct {
	Type  string   // R, L, C, series, parallel
	Name  string
	Value float64  // primitive element value
	Args  []string // operand names for combinations
}

var unitMap = map[string]float64{
	"T":   1e12,  // tera
	"G":   1e9,   // giga
	"meg": 1e6,   // mega
	"M":   1e6,   // mega
	"K":   1e3,   // kilo
	"k":   1e3,   // kilo
	"m":   1e-3,  // milli
	"u":   1e-6,  // micro
	"n":   1e-9,  // nano
	"p":   1e-12, // pico
	"f":   1e-15, // femto
}

func Parse(input string) (*NetlistData, error) {
	scanner := bufio.NewScanner(strings.NewReader(input))
	data := &NetlistData{}

	// Title or comment
	if scanner.Scan() {
		data.Title = strings.TrimPrefix(scanner.Text(), "*")
		data.Title = strings.TrimSpace(data.Title)
	}

	var currentLine string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" || strings.HasPrefix(line, "*") {
			if currentLine != "" {
				if err := parseLine(data, currentLine); err != nil {
					return nil, err
				}
				currentLine = ""
			}
			continue
		}

		if strings.HasPrefix(line, "+") { // Line continue
			currentLine += " " + strings.TrimSpace(line[1:])
			continue
		}

		if currentLine != "" {
			if err := parseLine(data, currentLine); err != nil {
				return nil, err
			}
		}
		currentLine = line
	}
	if currentLine != "" {
		if err := parseLine(data, currentLine); err != nil {
			return nil, err
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return data, nil
}

func parseLine(data *NetlistData, line string) error {
	line = regexp.MustCompile(`\s+`).ReplaceAllString(line, " ")
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	if strings.HasPrefix(fields[0], ".") {
		return parseCard(data, fields)
	}

	name := fields[0]
	switch {
	case strings.HasPrefix(name, "R"), strings.HasPrefix(name, "C"), strings.HasPrefix(name, "L"):
		if len(fields) < 2 {
			return fmt.Errorf("element %s: missing value", name)
		}
		value, err := ParseValue(fields[1])
		if err != nil {
			return fmt.Errorf("element %s: %v", name, err)
		}
		data.Elements = append(data.Elements, Element{Type: name[:1], Name: name, Value: value})

	case strings.HasPrefix(name, "X"):
		if len(fields) != 4 {
			return fmt.Errorf("combination %s: want <name> series|parallel <z1> <z2>", name)
		}
		op := strings.ToLower(fields[1])
		if op != "series" && op != "parallel" {
			return fmt.Errorf("combination %s: unknown operator %s", name, fields[1])
		}
		data.Elements = append(data.Elements, Element{Type: op, Name: name, Args: fields[2:4]})

	default:
		return fmt.Errorf("unknown element definition: %s", line)
	}
	return nil
}

func parseCard(data *NetlistData, fields []string) error {
	switch strings.ToLower(fields[0]) {
	case ".ac":
		if len(fields) != 5 {
			return fmt.Errorf(".ac card: want .ac dec|oct|lin <points> <fstart> <fstop>")
		}
		sweep := strings.ToUpper(fields[1])
		if sweep != "DEC" && sweep != "OCT" && sweep != "LIN" {
			return fmt.Errorf(".ac card: unknown sweep type %s", fields[1])
		}
		points, err := strconv.Atoi(fields[2])
		if err != nil {
			return fmt.Errorf(".ac card: invalid point count: %v", err)
		}
		fStart, err := ParseValue(fields[3])
		if err != nil {
			return fmt.Errorf(".ac card: invalid start frequency: %v", err)
		}
		fStop, err := ParseValue(fields[4])
		if err != nil {
			return fmt.Errorf(".ac card: invalid stop frequency: %v", err)
		}
		data.ACParam.Sweep = sweep
		data.ACParam.Points = points
		data.ACParam.FStart = fStart
		data.ACParam.FStop = fStop

	case ".probe":
		if len(fields) != 2 && len(fields) != 3 {
			return fmt.Errorf(".probe card: want .probe <name> [terminal]")
		}
		data.Probe.Name = fields[1]
		if len(fields) == 3 {
			terminal, err := strconv.Atoi(fields[2])
			if err != nil {
				return fmt.Errorf(".probe card: invalid terminal: %v", err)
			}
			data.Probe.Terminal = terminal
		}

	case ".end":

	default:
		return fmt.Errorf("unknown card: %s", fields[0])
	}
	return nil
}

// ParseValue - Parse value and factor. 1k -> 1000
func ParseValue(val string) (float64, error) {
	re := regexp.MustCompile(`^([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)(meg|[TGMKkmunpf])?$`)
	matches := re.FindStringSubmatch(strings.TrimSpace(val))

	if matches == nil {
		return 0, fmt.Errorf("invalid value format: %s", val)
	}

	num, err := strconv.ParseFloat(matches[1], 64)
	if err != nil {
		return 0, err
	}

	// factor
	if len(matches) > 2 && matches[2] != "" {
		if multiplier, ok := unitMap[matches[2]]; ok {
			num *= multiplier
		}
	}

	return num, nil
}

// Build resolves the element list into the probed component tree.
// The second result is the probe terminal, zero when the whole
// component is swept for impedance.
func Build(data *NetlistData) (component.Component, int, error) {
	built := make(map[string]component.Component)
	var last component.Component

	for _, elem := range data.Elements {
		var comp component.Component
		var err error

		switch elem.Type {
		case "R":
			comp, err = component.NewResistor(elem.Name, elem.Value)
		case "C":
			comp, err = component.NewCapacitor(elem.Name, elem.Value)
		case "L":
			comp, err = component.NewInductor(elem.Name, elem.Value)
		case "series", "parallel":
			z1, ok := built[elem.Args[0]]
			if !ok {
				return nil, 0, fmt.Errorf("combination %s: unknown element %s", elem.Name, elem.Args[0])
			}
			z2, ok := built[elem.Args[1]]
			if !ok {
				return nil, 0, fmt.Errorf("combination %s: unknown element %s", elem.Name, elem.Args[1])
			}
			if elem.Type == "series" {
				comp = component.NewSeries(elem.Name, z1, z2)
			} else {
				comp = component.NewParallel(elem.Name, z1, z2)
			}
		default:
			return nil, 0, fmt.Errorf("unknown element type: %s", elem.Type)
		}
		if err != nil {
			return nil, 0, err
		}

		built[elem.Name] = comp
		last = comp
	}

	if last == nil {
		return nil, 0, fmt.Errorf("netlist has no elements")
	}

	if data.Probe.Name != "" {
		comp, ok := built[data.Probe.Name]
		if !ok {
			return nil, 0, fmt.Errorf(".probe: unknown element %s", data.Probe.Name)
		}
		return comp, data.Probe.Terminal, nil
	}
	return last, 0, nil
}
