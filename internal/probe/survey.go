package probe

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/dungeonprobe/internal/constraints"
	"github.com/samdwyer/dungeonprobe/internal/grid"
)

// Survey walks c breadth-first from its initial rooms, following
// AdjacentRooms until MaxSpaces rooms have been reached, then asks c whether
// the result is acceptable. No keys or switches are placed.
func Survey(ctx context.Context, tracer trace.Tracer, c constraints.Constraints) *Layout {
	_, span := tracer.Start(ctx, "constraints.survey")
	defer span.End()

	startTime := time.Now()
	limit := c.MaxSpaces()
	layout := newLayout(uuid.NewString())

	initial := c.InitialRooms()
	if len(initial) > 0 {
		layout.Entrance = initial[0]
	}

	depth := make(map[grid.RoomID]int)
	queue := make([]grid.RoomID, 0, len(initial))
	visit := func(id grid.RoomID, d int) {
		if layout.Len() >= limit {
			return
		}
		if _, seen := depth[id]; seen {
			return
		}
		depth[id] = d
		queue = append(queue, id)
		layout.add(Room{ID: id, Cells: c.Coords(id), Depth: d})
	}

	for _, id := range initial {
		visit(id, 0)
	}

	queries := 0
	for len(queue) > 0 && layout.Len() < limit {
		id := queue[0]
		queue = queue[1:]
		queries++
		for _, n := range c.AdjacentRooms(id) {
			visit(n, depth[id]+1)
		}
	}

	layout.Accepted = c.IsAcceptable(layout)

	width, height := layout.Size()
	span.SetAttributes(
		attribute.String("survey.run_id", layout.RunID),
		attribute.Int("constraints.max_spaces", limit),
		attribute.Int("constraints.max_keys", c.MaxKeys()),
		attribute.Int("constraints.max_switches", c.MaxSwitches()),
		attribute.Int("survey.room_count", layout.Len()),
		attribute.Int("survey.adjacency_queries", queries),
		attribute.Int("survey.width", width),
		attribute.Int("survey.height", height),
		attribute.Bool("survey.accepted", layout.Accepted),
		attribute.Int64("survey.duration_us", time.Since(startTime).Microseconds()),
	)

	return layout
}
