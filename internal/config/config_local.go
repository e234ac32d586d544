//go:build !gcloud

package config

// DeliveryEnabled reports whether reminders are also pushed to Primind Tasks.
func (c *TaskQueueConfig) DeliveryEnabled() bool {
	return c.PrimindTasksURL != ""
}

// Validate accepts an empty PRIMIND_TASKS_URL; task queue delivery is
// then disabled.
func (c *TaskQueueConfig) Validate() error {
	return nil
}
