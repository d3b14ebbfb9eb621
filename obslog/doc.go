// Package obslog provides the structured logger shared by the orchestrator
// and routing solver, mirroring the `self.logger = logging.getLogger(__name__)`
// pattern used throughout the source this scheduler was distilled from.
package obslog
