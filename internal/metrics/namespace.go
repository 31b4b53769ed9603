package metrics

const Namespace = "inventory"
