package widgets

// ControllerListeners reports how many listeners c currently holds.
func ControllerListeners(c *ScrollController) int {
	c.init()
	return c.metrics.ListenerCount()
}
