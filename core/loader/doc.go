// Package loader provides the feature loading system.
//
// Each feature implements the Feature interface and registers its routes when
// loaded. The Manager keeps features in registration order and loads the
// enabled ones.
//
//	mgr := loader.NewManager()
//	mgr.Register(stock.NewFeature(svc, logg))
//	err := mgr.LoadAll(app)
package loader
