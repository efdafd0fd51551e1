package block

import "math"

// CriticalPath returns the duration of the longest dependency chain through
// the block and the handles along it, in execution order. Task gaps are not
// part of the path length.
func (b *SchedulingBlock) CriticalPath() (float64, []NodeID, error) {
	if b.Len() == 0 {
		return 0, nil, ErrEmptyBlock
	}
	order, err := b.TopoOrder()
	if err != nil {
		return 0, nil, err
	}

	earliest := make(map[NodeID]float64, len(order))
	pred := make(map[NodeID]NodeID, len(order))
	for _, n := range order {
		finish := earliest[n] + b.nodes[n].task.Size()
		for _, e := range b.nodes[n].out {
			if finish > earliest[e.peer] {
				earliest[e.peer] = finish
				pred[e.peer] = n
			}
		}
	}

	end := order[0]
	total := math.Inf(-1)
	for _, n := range order {
		if finish := earliest[n] + b.nodes[n].task.Size(); finish > total {
			total = finish
			end = n
		}
	}

	path := []NodeID{end}
	for {
		p, ok := pred[path[len(path)-1]]
		if !ok {
			break
		}
		path = append(path, p)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return total, path, nil
}
