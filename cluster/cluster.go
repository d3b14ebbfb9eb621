package cluster

import (
	"errors"
	"sort"

	"github.com/lvlath-contrib/pnpsched/domain"
)

// ErrDistancesNotComputed indicates BuildClusters was called before
// job.CalculateDistances(); clustering needs feeder→placement distances.
var ErrDistancesNotComputed = errors.New("cluster: job distances not computed")

// Cluster is an ordered list of placements of one part_type, sized
// [1, head_capacity], intended for one pickup trip.
type Cluster struct {
	PartType   string
	Placements []domain.Node
}

// BuildClusters partitions job's placements per feeder/part_type into
// head-sized clusters, in feeder ascending-x order, then nearest-first
// within each feeder (§4.1).
//
// A feeder with no matching placements is skipped (no clusters, no
// pickup/travel events will be emitted for it downstream). A part_type with
// zero placements yields an empty cluster list.
//
// Complexity: O(P log P) per feeder for the distance sort, O(F·P log P)
// overall where F = len(job.Feeders), P = placements per feeder.
func BuildClusters(job *domain.Job) (map[string][]Cluster, error) {
	if !job.DistancesReady() {
		return nil, ErrDistancesNotComputed
	}

	result := make(map[string][]Cluster, len(job.Feeders))
	headCapacity := job.Machine.HeadCapacity

	for _, feeder := range job.Feeders {
		partType := feeder.PartType

		var own []domain.Node
		for _, p := range job.Placements {
			if p.PartType == partType {
				own = append(own, p)
			}
		}
		if len(own) == 0 {
			result[partType] = nil

			continue
		}

		sort.SliceStable(own, func(i, j int) bool {
			di, _ := job.FeederPlacementDistance(feeder.ID, own[i].ID)
			dj, _ := job.FeederPlacementDistance(feeder.ID, own[j].ID)
			if di != dj {
				return di < dj
			}

			return own[i].ID < own[j].ID // deterministic tie-break
		})

		clusters := make([]Cluster, 0, (len(own)+headCapacity-1)/headCapacity)
		for i := 0; i < len(own); i += headCapacity {
			end := i + headCapacity
			if end > len(own) {
				end = len(own)
			}
			clusters = append(clusters, Cluster{PartType: partType, Placements: own[i:end]})
		}

		result[partType] = clusters
	}

	return result, nil
}
