// Package catalog implements the sync pipeline and the read side of the tech
// catalog.
//
// [SyncEngine] runs the single linear pass Areas → Niches → Languages →
// Skills → cache invalidation. Stage failures are recorded in the
// [models.SyncResult] and never abort the run; a partially synchronized
// catalog is an accepted outcome and the next run is the recovery path.
// Overlapping runs are unsupported; callers serialize invocations.
//
// [Queries] serves cache-aside listings and searches to the presentation
// layer. Reads may run concurrently with an in-progress sync; a reader can
// briefly observe new rows alongside a pre-sync cache entry until the final
// invalidation step closes the window.
package catalog
